package store

import (
	"context"
	"sync"
	"time"

	"github.com/couchcryptid/dev-fortune-service/internal/domain"
)

// Memory is an in-memory daily fortune store for development and tests. Same
// contract as SQLite, no durability.
type Memory struct {
	mu      sync.Mutex
	entries map[string]domain.DailyAccessEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]domain.DailyAccessEntry)}
}

// Ping always succeeds.
func (m *Memory) Ping(_ context.Context) error { return nil }

// GetEntry returns a copy of the user's entry, or nil when absent.
func (m *Memory) GetEntry(_ context.Context, userID string) (*domain.DailyAccessEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[userID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// RecordAccess overwrites the user's entry.
func (m *Memory) RecordAccess(_ context.Context, userID string, fortune domain.FortuneRecord, issuedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[userID] = domain.DailyAccessEntry{
		UserID:      userID,
		LastAccess:  issuedAt.UTC(),
		LastFortune: fortune,
	}
	return nil
}
