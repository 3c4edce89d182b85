package service

import (
	"context"
	"fmt"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/pkg/logger"
	"peche-payments-be/internal/repository/specification"
	"peche-payments-be/internal/repository/unitofwork"
	"peche-payments-be/pkg/admin/dashboard"
)

type IAdminService interface {
	GetPayments(ctx context.Context) ([]*dto.PaymentResponse, error)
	GetStats(ctx context.Context) (*dto.PaymentStatsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *dashboard.Aggregator
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, aggregator *dashboard.Aggregator, logger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		aggregator: aggregator,
		logger:     logger,
	}
}

func (s *adminService) GetPayments(ctx context.Context) ([]*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payments, err := uow.PaymentRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return paymentsToResponses(payments), nil
}

func (s *adminService) GetStats(ctx context.Context) (*dto.PaymentStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := s.aggregator.GetPaymentStats(ctx, uow)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payment stats: %w", err)
	}
	return stats, nil
}
