package unitofwork

import (
	"context"

	"peche-payments-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PaymentRepository() contract.PaymentRepository
	SubscriberRepository() contract.SubscriberRepository
}
