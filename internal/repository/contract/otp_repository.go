package contract

import (
	"context"

	"peche-payments-be/internal/entity"
)

// OtpRepository is a keyed store of live OTP entries, keyed by admin email.
// Save overwrites any prior entry for the key. Get returns (nil, nil) on a
// miss, matching the repository miss convention used elsewhere.
type OtpRepository interface {
	Save(ctx context.Context, email string, entry *entity.OtpEntry) error
	Get(ctx context.Context, email string) (*entity.OtpEntry, error)
	Delete(ctx context.Context, email string) error
}
