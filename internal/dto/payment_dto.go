// FILE: internal/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	ProductName string  `json:"product_name"`
}

type CreateOrderResponse struct {
	OrderId  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor units, as the gateway widget expects
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderId   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentId string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	ProductName       string `json:"product_name"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
}

type PaymentFailedRequest struct {
	RazorpayOrderId   string `json:"razorpay_order_id"`
	RazorpayPaymentId string `json:"razorpay_payment_id"`
	ErrorCode         string `json:"error_code"`
	ErrorDescription  string `json:"error_description"`
	ProductName       string `json:"product_name"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
}

type PaymentResponse struct {
	Id            uuid.UUID `json:"id"`
	PaymentId     string    `json:"payment_id"`
	OrderId       string    `json:"order_id"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	ProductName   string    `json:"product_name"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	PaymentDate   time.Time `json:"payment_date"`
	CreatedAt     time.Time `json:"created_at"`
}
