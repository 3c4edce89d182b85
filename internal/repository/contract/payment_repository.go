package contract

import (
	"context"

	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/repository/specification"
)

// PaymentRepository is insert-only: callback records form a ledger, rows
// are never updated or deleted by this service.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Payment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payment, error)
}
