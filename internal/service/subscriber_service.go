package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/pkg/logger"
	"peche-payments-be/internal/repository/specification"
	"peche-payments-be/internal/repository/unitofwork"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type ISubscriberService interface {
	Subscribe(ctx context.Context, request *dto.SubscribeRequest) (*dto.SubscriberResponse, error)
	GetSubscribers(ctx context.Context) ([]*dto.SubscriberResponse, error)
}

type subscriberService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSubscriberService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ISubscriberService {
	return &subscriberService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Subscribe runs the duplicate check and the insert in one transaction so
// two racing signups for the same address cannot both pass the check. The
// unique index on email backstops anything the transaction isolation
// level still lets through.
func (s *subscriberService) Subscribe(ctx context.Context, request *dto.SubscribeRequest) (*dto.SubscriberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	repo := uow.SubscriberRepository()

	existing, err := repo.FindOne(ctx, specification.ByEmail{Email: request.Email})
	if err != nil {
		_ = uow.Rollback()
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if existing != nil {
		_ = uow.Rollback()
		return nil, ErrAlreadySubscribed
	}

	subscriber := &entity.Subscriber{
		Id:    uuid.New(),
		Email: request.Email,
	}
	if err := repo.Create(ctx, subscriber); err != nil {
		_ = uow.Rollback()
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit subscription: %w", err)
	}

	s.logger.Info("SubscriberService", "new subscriber", map[string]interface{}{
		"email": subscriber.Email,
	})

	return subscriberToResponse(subscriber), nil
}

func (s *subscriberService) GetSubscribers(ctx context.Context) ([]*dto.SubscriberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscribers, err := uow.SubscriberRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	responses := make([]*dto.SubscriberResponse, 0, len(subscribers))
	for _, subscriber := range subscribers {
		responses = append(responses, subscriberToResponse(subscriber))
	}
	return responses, nil
}

func subscriberToResponse(subscriber *entity.Subscriber) *dto.SubscriberResponse {
	return &dto.SubscriberResponse{
		Id:        subscriber.Id,
		Email:     subscriber.Email,
		CreatedAt: subscriber.CreatedAt,
	}
}
