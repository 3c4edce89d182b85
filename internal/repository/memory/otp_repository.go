package memory

import (
	"context"
	"time"

	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// OtpRepository keeps live OTP entries in process memory. A restart drops
// all outstanding codes; that trade-off is accepted for single-instance
// deployments. Cache entries expire alongside the OTP itself so stale
// codes get purged even when nobody retries them.
type OtpRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewOtpRepository(ttl time.Duration) contract.OtpRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &OtpRepository{
		cache: c,
		ttl:   ttl,
	}
}

func (r *OtpRepository) Save(_ context.Context, email string, entry *entity.OtpEntry) error {
	r.cache.Set(email, entry, cache.DefaultExpiration)
	return nil
}

func (r *OtpRepository) Get(_ context.Context, email string) (*entity.OtpEntry, error) {
	if x, found := r.cache.Get(email); found {
		return x.(*entity.OtpEntry), nil
	}
	return nil, nil
}

func (r *OtpRepository) Delete(_ context.Context, email string) error {
	r.cache.Delete(email)
	return nil
}
