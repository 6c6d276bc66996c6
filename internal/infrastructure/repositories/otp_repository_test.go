package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/you/authsvc/domain"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestOTPRepositoryImpl_FindByUserID(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewOTPRepository(client, 24*time.Hour)

	record := &domain.OTPRecord{
		UserID:    1,
		Code:      "123456",
		Verified:  false,
		ExpiresAt: time.Now().Add(2 * time.Minute).UTC(),
	}

	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	found, err := repo.FindByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Code != "123456" {
		t.Errorf("code %q, want 123456", found.Code)
	}
	if found.Verified {
		t.Error("verified flag should be false")
	}
	if !found.ExpiresAt.Equal(record.ExpiresAt) {
		t.Errorf("expiry %v, want %v", found.ExpiresAt, record.ExpiresAt)
	}

	if _, err := repo.FindByUserID(context.Background(), 2); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Fatalf("expected ErrOTPNotFound, got %v", err)
	}
}

func TestOTPRepositoryImpl_UpsertOverwrites(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewOTPRepository(client, 24*time.Hour)

	first := &domain.OTPRecord{UserID: 1, Code: "111111", Verified: true, ExpiresAt: time.Now().Add(time.Minute).UTC()}
	if err := repo.Upsert(context.Background(), first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	second := &domain.OTPRecord{UserID: 1, Code: "222222", Verified: false, ExpiresAt: time.Now().Add(2 * time.Minute).UTC()}
	if err := repo.Upsert(context.Background(), second); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	found, err := repo.FindByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Code != "222222" {
		t.Errorf("code %q, want the overwriting 222222", found.Code)
	}
	if found.Verified {
		t.Error("overwrite must carry the fresh verified=false")
	}

	// One key per user: no duplicates survive an overwrite
	keys := client.Keys(context.Background(), "otp:user:*").Val()
	if len(keys) != 1 {
		t.Errorf("expected exactly one record, found keys %v", keys)
	}
}

func TestOTPRepositoryImpl_ExpiredRecordStaysReadable(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewOTPRepository(client, 24*time.Hour)

	// Already past its validity window, still within retention
	record := &domain.OTPRecord{UserID: 1, Code: "123456", ExpiresAt: time.Now().Add(-time.Minute).UTC()}
	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	found, err := repo.FindByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("expired record must stay readable, got %v", err)
	}
	if !found.ExpiresAt.Before(time.Now()) {
		t.Error("record should read back as expired")
	}
}
