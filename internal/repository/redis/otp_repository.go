package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"peche-payments-be/internal/entity"
	"peche-payments-be/internal/repository/contract"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "admin_otp:"

// OtpRepository stores OTP entries in Redis so multiple instances can share
// one keyed store. Same single-use/overwrite semantics as the memory store;
// the key TTL mirrors the entry expiry.
type OtpRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewOtpRepository(client *goredis.Client, ttl time.Duration) contract.OtpRepository {
	return &OtpRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *OtpRepository) Save(ctx context.Context, email string, entry *entity.OtpEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+email, payload, r.ttl).Err()
}

func (r *OtpRepository) Get(ctx context.Context, email string) (*entity.OtpEntry, error) {
	payload, err := r.client.Get(ctx, keyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var entry entity.OtpEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *OtpRepository) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, keyPrefix+email).Err()
}
