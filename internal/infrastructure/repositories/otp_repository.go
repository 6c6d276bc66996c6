package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/authsvc/domain"
)

// OTPRepositoryImpl implements domain.OTPRepository using Redis. The whole
// record is written with a single SET, so a reissue replaces any prior
// record atomically and two concurrent issues cannot leave two live codes
// for one user.
type OTPRepositoryImpl struct {
	client    *redis.Client
	prefix    string
	retention time.Duration
}

// NewOTPRepository creates a new OTP repository. retention bounds how long
// a record stays readable and must exceed the code validity window:
// recently expired codes are reported as expired, not missing.
func NewOTPRepository(client *redis.Client, retention time.Duration) domain.OTPRepository {
	return &OTPRepositoryImpl{
		client:    client,
		prefix:    "otp:user:",
		retention: retention,
	}
}

// FindByUserID implements domain.OTPRepository
func (r *OTPRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.OTPRecord, error) {
	key := fmt.Sprintf("%s%d", r.prefix, userID)
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}

	var record domain.OTPRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp record: %w", err)
	}

	return &record, nil
}

// Upsert implements domain.OTPRepository
func (r *OTPRepositoryImpl) Upsert(ctx context.Context, record *domain.OTPRecord) error {
	key := fmt.Sprintf("%s%d", r.prefix, record.UserID)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal otp record: %w", err)
	}

	return r.client.Set(ctx, key, data, r.retention).Err()
}
