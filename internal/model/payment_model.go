package model

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PaymentId     string    `gorm:"type:varchar(255);not null;index"`
	OrderId       string    `gorm:"type:varchar(255);index"`
	Name          string    `gorm:"type:varchar(255)"`
	Email         string    `gorm:"type:varchar(255);index"`
	Phone         string    `gorm:"type:varchar(50)"`
	ProductName   string    `gorm:"type:varchar(255)"`
	Amount        float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Currency      string    `gorm:"type:varchar(10);not null;default:'INR'"`
	PaymentMethod string    `gorm:"type:varchar(50)"`
	Status        string    `gorm:"type:varchar(30);not null;index"`
	PaymentDate   time.Time
	Signature     string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
}

func (Payment) TableName() string {
	return "payments"
}
