package gateway

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the gateway's created payment intent.
type Order struct {
	ID       string
	Amount   int64 // minor units
	Currency string
	Receipt  string
	Status   string
}

// PaymentDetails is the gateway's authoritative record of one payment,
// fetched by id. Amount is in minor units.
type PaymentDetails struct {
	ID        string
	Amount    int64
	Currency  string
	Status    string
	Method    string
	Email     string
	Contact   string
	CreatedAt int64 // unix seconds
}

// Client is the slice of the gateway API this service needs. Kept as an
// interface so services can be exercised with a stub.
type Client interface {
	CreateOrder(amountMinor int64, currency, receipt string, autoCapture bool) (*Order, error)
	FetchPayment(paymentID string) (*PaymentDetails, error)
}

type razorpayClient struct {
	client *razorpay.Client
}

func NewRazorpayClient(keyID, keySecret string) Client {
	return &razorpayClient{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

func (c *razorpayClient) CreateOrder(amountMinor int64, currency, receipt string, autoCapture bool) (*Order, error) {
	capture := 0
	if autoCapture {
		capture = 1
	}
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": capture,
	}

	body, err := c.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	return &Order{
		ID:       asString(body["id"]),
		Amount:   asInt64(body["amount"]),
		Currency: asString(body["currency"]),
		Receipt:  asString(body["receipt"]),
		Status:   asString(body["status"]),
	}, nil
}

func (c *razorpayClient) FetchPayment(paymentID string) (*PaymentDetails, error) {
	body, err := c.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay payment fetch: %w", err)
	}

	return &PaymentDetails{
		ID:        asString(body["id"]),
		Amount:    asInt64(body["amount"]),
		Currency:  asString(body["currency"]),
		Status:    asString(body["status"]),
		Method:    asString(body["method"]),
		Email:     asString(body["email"]),
		Contact:   asString(body["contact"]),
		CreatedAt: asInt64(body["created_at"]),
	}, nil
}

// The SDK decodes JSON into map[string]interface{}, so numbers arrive as
// float64 and absent fields as nil.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}
