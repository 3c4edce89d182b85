package dashboard

import (
	"context"
	"fmt"

	"peche-payments-be/internal/dto"
	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/pkg/logger"
	"peche-payments-be/internal/repository/unitofwork"
)

// Aggregator computes the admin dashboard payment statistics.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetPaymentStats aggregates the whole ledger in one pass. Revenue counts
// captured payments only; paymentsByDate sums every status, bucketed by
// the record's local calendar date.
func (a *Aggregator) GetPaymentStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.PaymentStatsResponse, error) {
	payments, err := uow.PaymentRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totalPayments := len(payments)
	var totalRevenue float64
	var successful, failed int
	paymentsByDate := make(map[string]float64)

	for _, p := range payments {
		switch p.Status {
		case entity.PaymentStatusCaptured:
			successful++
			totalRevenue += p.Amount
		case entity.PaymentStatusFailed:
			failed++
		}
		date := p.CreatedAt.Local().Format("2006-01-02")
		paymentsByDate[date] += p.Amount
	}

	successRate := "0.00"
	if totalPayments > 0 {
		successRate = fmt.Sprintf("%.2f", float64(successful)/float64(totalPayments)*100)
	}

	return &dto.PaymentStatsResponse{
		TotalPayments:      totalPayments,
		TotalRevenue:       fmt.Sprintf("%.2f", totalRevenue),
		SuccessfulPayments: successful,
		SuccessRate:        successRate,
		FailedPayments:     failed,
		PendingPayments:    totalPayments - successful - failed,
		PaymentsByDate:     paymentsByDate,
	}, nil
}
