package mocks

import (
	"context"
	"sync"

	"github.com/you/authsvc/domain"
)

// MockOTPRepository implements domain.OTPRepository interface for testing.
// When no overrides are set it behaves as an in-memory store, which covers
// the common issue-then-verify sequences.
type MockOTPRepository struct {
	FindByUserIDFunc func(ctx context.Context, userID uint) (*domain.OTPRecord, error)
	UpsertFunc       func(ctx context.Context, record *domain.OTPRecord) error

	mu      sync.Mutex
	records map[uint]domain.OTPRecord
}

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{records: make(map[uint]domain.OTPRecord)}
}

// FindByUserID returns the stored record for a user
func (m *MockOTPRepository) FindByUserID(ctx context.Context, userID uint) (*domain.OTPRecord, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[userID]
	if !ok {
		return nil, domain.ErrOTPNotFound
	}
	return &record, nil
}

// Upsert stores or replaces the record for a user
func (m *MockOTPRepository) Upsert(ctx context.Context, record *domain.OTPRecord) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.UserID] = *record
	return nil
}

// Stored returns a copy of the record held for a user, for assertions.
func (m *MockOTPRepository) Stored(userID uint) (domain.OTPRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[userID]
	return record, ok
}
