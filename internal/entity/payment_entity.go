// FILE: internal/entity/payment_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Payment is one gateway callback outcome. Records are insert-only: a
// repeated callback for the same payment id creates a new row.
type Payment struct {
	Id            uuid.UUID
	PaymentId     string
	OrderId       string
	Name          string
	Email         string
	Phone         string
	ProductName   string
	Amount        float64 // major currency units
	Currency      string
	PaymentMethod string
	Status        PaymentStatus
	PaymentDate   time.Time
	Signature     string // verified signature, or error code for failed payments
	CreatedAt     time.Time
}
