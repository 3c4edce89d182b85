// FILE: internal/dto/admin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"peche-payments-be/pkg/analytics"
)

// PaymentStatsResponse keeps the camelCase keys the admin dashboard charts
// already consume. Revenue and rate are 2dp-formatted strings.
type PaymentStatsResponse struct {
	TotalPayments      int                `json:"totalPayments"`
	TotalRevenue       string             `json:"totalRevenue"`
	SuccessfulPayments int                `json:"successfulPayments"`
	SuccessRate        string             `json:"successRate"`
	FailedPayments     int                `json:"failedPayments"`
	PendingPayments    int                `json:"pendingPayments"`
	PaymentsByDate     map[string]float64 `json:"paymentsByDate"`
}

type SubscriberResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AnalyticsResponse wraps the traffic snapshot with a flag telling the
// dashboard whether Google Analytics credentials still need configuring.
type AnalyticsResponse struct {
	*analytics.Snapshot
	SetupRequired bool `json:"setup_required,omitempty"`
}
