package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/pkg/logger"
	"peche-payments-be/internal/pkg/mailer"
	"peche-payments-be/internal/repository/specification"
	"peche-payments-be/internal/repository/unitofwork"
	"peche-payments-be/pkg/gateway"
)

var (
	ErrSignatureMismatch = errors.New("payment signature verification failed")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentPersist    = errors.New("payment verified but could not be recorded")
)

type IPaymentService interface {
	CreateOrder(ctx context.Context, request *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, request *dto.VerifyPaymentRequest) (*dto.PaymentResponse, error)
	RecordFailure(ctx context.Context, request *dto.PaymentFailedRequest) error
	GetPayments(ctx context.Context, limit, offset int) ([]*dto.PaymentResponse, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*dto.PaymentResponse, error)
}

type paymentService struct {
	uowFactory  unitofwork.RepositoryFactory
	gateway     gateway.Client
	keySecret   string
	mailer      mailer.IEmailService
	logger      logger.ILogger
	productName string
	downloadURL string
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	gatewayClient gateway.Client,
	keySecret string,
	customerMailer mailer.IEmailService,
	logger logger.ILogger,
	productName string,
	downloadURL string,
) IPaymentService {
	return &paymentService{
		uowFactory:  uowFactory,
		gateway:     gatewayClient,
		keySecret:   keySecret,
		mailer:      customerMailer,
		logger:      logger,
		productName: productName,
		downloadURL: downloadURL,
	}
}

// CreateOrder registers a gateway order for the given amount. Amounts
// arrive in major units and are converted to the smallest currency unit.
func (s *paymentService) CreateOrder(ctx context.Context, request *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	amountMinor := int64(math.Round(request.Amount * 100))
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	order, err := s.gateway.CreateOrder(amountMinor, "INR", receipt, true)
	if err != nil {
		s.logger.Error("PaymentService", "gateway order creation failed", map[string]interface{}{
			"amount": request.Amount,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("PaymentService", "order created", map[string]interface{}{
		"order_id": order.ID,
		"amount":   order.Amount,
	})

	return &dto.CreateOrderResponse{
		OrderId:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	}, nil
}

// VerifyPayment authenticates the checkout callback signature, pulls the
// authoritative payment state from the gateway, and records it. The
// download email is best effort and never fails the verification.
func (s *paymentService) VerifyPayment(ctx context.Context, request *dto.VerifyPaymentRequest) (*dto.PaymentResponse, error) {
	expected := computeSignature(request.RazorpayOrderId, request.RazorpayPaymentId, s.keySecret)
	if request.RazorpaySignature != expected {
		s.logger.Warn("PaymentService", "signature mismatch", map[string]interface{}{
			"order_id":   request.RazorpayOrderId,
			"payment_id": request.RazorpayPaymentId,
		})
		return nil, ErrSignatureMismatch
	}

	details, err := s.gateway.FetchPayment(request.RazorpayPaymentId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment details: %w", err)
	}

	email := request.Email
	if email == "" {
		email = details.Email
	}
	phone := request.Phone
	if phone == "" {
		phone = details.Contact
	}
	productName := request.ProductName
	if productName == "" {
		productName = s.productName
	}

	payment := &entity.Payment{
		Id:            uuid.New(),
		PaymentId:     details.ID,
		OrderId:       request.RazorpayOrderId,
		Name:          request.Name,
		Email:         email,
		Phone:         phone,
		ProductName:   productName,
		Amount:        float64(details.Amount) / 100,
		Currency:      details.Currency,
		PaymentMethod: details.Method,
		Status:        entity.PaymentStatus(details.Status),
		PaymentDate:   time.Unix(details.CreatedAt, 0),
		Signature:     request.RazorpaySignature,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PaymentRepository().Create(ctx, payment); err != nil {
		s.logger.Error("PaymentService", "failed to persist verified payment", map[string]interface{}{
			"payment_id": payment.PaymentId,
			"error":      err.Error(),
		})
		return nil, ErrPaymentPersist
	}

	if payment.Status == entity.PaymentStatusCaptured && payment.Email != "" {
		if err := s.mailer.SendDownloadLink(payment.Email, payment.ProductName, s.downloadURL); err != nil {
			s.logger.Error("PaymentService", "download email dispatch failed", map[string]interface{}{
				"payment_id": payment.PaymentId,
				"email":      payment.Email,
				"error":      err.Error(),
			})
		}
	}

	s.logger.Info("PaymentService", "payment verified", map[string]interface{}{
		"payment_id": payment.PaymentId,
		"status":     payment.Status,
	})

	return paymentToResponse(payment), nil
}

// RecordFailure stores a failed checkout attempt. Enrichment from the
// gateway is opportunistic; the record is written with defaults when the
// payment cannot be fetched, and persistence errors are swallowed so the
// client callback always succeeds.
func (s *paymentService) RecordFailure(ctx context.Context, request *dto.PaymentFailedRequest) error {
	paymentID := request.RazorpayPaymentId
	amount := float64(0)
	method := "unknown"

	if paymentID != "" {
		if details, err := s.gateway.FetchPayment(paymentID); err == nil {
			amount = float64(details.Amount) / 100
			if details.Method != "" {
				method = details.Method
			}
		} else {
			s.logger.Warn("PaymentService", "could not enrich failed payment", map[string]interface{}{
				"payment_id": paymentID,
				"error":      err.Error(),
			})
		}
	} else {
		paymentID = fmt.Sprintf("failed_%d", time.Now().UnixMilli())
	}

	reason := request.ErrorCode
	if reason == "" {
		reason = request.ErrorDescription
	}
	productName := request.ProductName
	if productName == "" {
		productName = s.productName
	}

	payment := &entity.Payment{
		Id:            uuid.New(),
		PaymentId:     paymentID,
		OrderId:       request.RazorpayOrderId,
		Name:          request.Name,
		Email:         request.Email,
		Phone:         request.Phone,
		ProductName:   productName,
		Amount:        amount,
		Currency:      "INR",
		PaymentMethod: method,
		Status:        entity.PaymentStatusFailed,
		PaymentDate:   time.Now(),
		Signature:     reason,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PaymentRepository().Create(ctx, payment); err != nil {
		s.logger.Error("PaymentService", "failed to persist failed payment", map[string]interface{}{
			"payment_id": paymentID,
			"error":      err.Error(),
		})
	}
	return nil
}

// GetPayments lists the ledger newest first. A positive limit narrows the
// window for large ledgers; limit 0 returns everything.
func (s *paymentService) GetPayments(ctx context.Context, limit, offset int) ([]*dto.PaymentResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	payments, err := uow.PaymentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return paymentsToResponses(payments), nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByPaymentID{PaymentID: paymentID})
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return paymentToResponse(payment), nil
}

func computeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func paymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		Id:            payment.Id,
		PaymentId:     payment.PaymentId,
		OrderId:       payment.OrderId,
		Name:          payment.Name,
		Email:         payment.Email,
		Phone:         payment.Phone,
		ProductName:   payment.ProductName,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		PaymentMethod: payment.PaymentMethod,
		Status:        string(payment.Status),
		PaymentDate:   payment.PaymentDate,
		CreatedAt:     payment.CreatedAt,
	}
}

func paymentsToResponses(payments []*entity.Payment) []*dto.PaymentResponse {
	responses := make([]*dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, paymentToResponse(payment))
	}
	return responses
}
