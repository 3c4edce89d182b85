package contract

import (
	"context"

	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/repository/specification"
)

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *entity.Subscriber) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscriber, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscriber, error)
}
