package service

import (
	"context"
	"errors"

	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/repository/contract"
	"peche-payments-be/internal/repository/specification"
	"peche-payments-be/internal/repository/unitofwork"
	"peche-payments-be/pkg/gateway"
)

// Shared in-memory fakes for the service tests.

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeMailer struct {
	otpCalls      []string // last OTP code per call
	otpRecipients []string
	downloadCalls []string // recipient per call
	failWith      error
}

func (m *fakeMailer) SendOTP(toEmail, otp string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.otpRecipients = append(m.otpRecipients, toEmail)
	m.otpCalls = append(m.otpCalls, otp)
	return nil
}

func (m *fakeMailer) SendDownloadLink(toEmail, productName, downloadURL string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.downloadCalls = append(m.downloadCalls, toEmail)
	return nil
}

type fakePaymentRepo struct {
	payments  []*entity.Payment
	createErr error
	lastSpecs []specification.Specification
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Payment, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByPaymentID); ok {
			for _, p := range r.payments {
				if p.PaymentId == byID.PaymentID {
					return p, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Payment, error) {
	r.lastSpecs = specs
	result := r.payments
	for _, spec := range specs {
		if page, ok := spec.(specification.Pagination); ok {
			if page.Offset >= len(result) {
				return nil, nil
			}
			result = result[page.Offset:]
			if page.Limit < len(result) {
				result = result[:page.Limit]
			}
		}
	}
	return result, nil
}

type fakeSubscriberRepo struct {
	subscribers []*entity.Subscriber
	createErr   error
}

func (r *fakeSubscriberRepo) Create(_ context.Context, subscriber *entity.Subscriber) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.subscribers = append(r.subscribers, subscriber)
	return nil
}

func (r *fakeSubscriberRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Subscriber, error) {
	for _, spec := range specs {
		if byEmail, ok := spec.(specification.ByEmail); ok {
			for _, s := range r.subscribers {
				if s.Email == byEmail.Email {
					return s, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeSubscriberRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Subscriber, error) {
	return r.subscribers, nil
}

type fakeUnitOfWork struct {
	paymentRepo    *fakePaymentRepo
	subscriberRepo *fakeSubscriberRepo

	begins    int
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) Begin(context.Context) error { u.begins++; return nil }
func (u *fakeUnitOfWork) Commit() error               { u.commits++; return nil }
func (u *fakeUnitOfWork) Rollback() error             { u.rollbacks++; return nil }

func (u *fakeUnitOfWork) PaymentRepository() contract.PaymentRepository {
	return u.paymentRepo
}

func (u *fakeUnitOfWork) SubscriberRepository() contract.SubscriberRepository {
	return u.subscriberRepo
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{
		uow: &fakeUnitOfWork{
			paymentRepo:    &fakePaymentRepo{},
			subscriberRepo: &fakeSubscriberRepo{},
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeGateway struct {
	lastAmountMinor int64
	lastCurrency    string
	lastReceipt     string

	order      *gateway.Order
	orderErr   error
	payment    *gateway.PaymentDetails
	paymentErr error
	fetchedIDs []string
}

func (g *fakeGateway) CreateOrder(amountMinor int64, currency, receipt string, autoCapture bool) (*gateway.Order, error) {
	g.lastAmountMinor = amountMinor
	g.lastCurrency = currency
	g.lastReceipt = receipt
	if g.orderErr != nil {
		return nil, g.orderErr
	}
	if g.order != nil {
		return g.order, nil
	}
	return &gateway.Order{
		ID:       "order_test",
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) FetchPayment(paymentID string) (*gateway.PaymentDetails, error) {
	g.fetchedIDs = append(g.fetchedIDs, paymentID)
	if g.paymentErr != nil {
		return nil, g.paymentErr
	}
	return g.payment, nil
}

var errBoom = errors.New("boom")
