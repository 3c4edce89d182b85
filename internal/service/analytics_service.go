package service

import (
	"context"

	"peche-payments-be/pkg/analytics"
)

// IAnalyticsService exposes the traffic snapshot for the admin dashboard.
type IAnalyticsService interface {
	IsConfigured() bool
	GetSnapshot(ctx context.Context) *analytics.Snapshot
}

type analyticsService struct {
	provider *analytics.Provider
}

func NewAnalyticsService(provider *analytics.Provider) IAnalyticsService {
	return &analyticsService{
		provider: provider,
	}
}

func (s *analyticsService) IsConfigured() bool {
	return s.provider.IsConfigured()
}

func (s *analyticsService) GetSnapshot(ctx context.Context) *analytics.Snapshot {
	return s.provider.GetSnapshot(ctx)
}
