// Package store persists the per-user daily access state: for each opaque
// user identifier, the timestamp of the last fortune issuance and the issued
// record. One row per user, overwritten on each new day's issuance.
//
// Storage failures are surfaced, never masked: silently fabricating or losing
// a daily record would break the once-per-day contract.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "embed"

	_ "github.com/mattn/go-sqlite3"

	"github.com/couchcryptid/dev-fortune-service/internal/domain"
)

//go:embed schema.sql
var schema string

// SQLite is the durable daily fortune store.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and initializes
// the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable. Used by the readiness probe.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetEntry returns the user's daily access entry, or nil when the user has
// never been issued a fortune.
func (s *SQLite) GetEntry(ctx context.Context, userID string) (*domain.DailyAccessEntry, error) {
	var (
		lastAccess  time.Time
		fortuneJSON string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT last_access, fortune FROM daily_access WHERE user_id = ?",
		userID,
	).Scan(&lastAccess, &fortuneJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily access entry: %w", err)
	}

	var fortune domain.FortuneRecord
	if err := json.Unmarshal([]byte(fortuneJSON), &fortune); err != nil {
		return nil, fmt.Errorf("decode stored fortune: %w", err)
	}

	return &domain.DailyAccessEntry{
		UserID:      userID,
		LastAccess:  lastAccess,
		LastFortune: fortune,
	}, nil
}

// RecordAccess upserts the user's entry with the issued fortune and timestamp,
// overwriting any prior entry. No history is retained.
func (s *SQLite) RecordAccess(ctx context.Context, userID string, fortune domain.FortuneRecord, issuedAt time.Time) error {
	fortuneJSON, err := json.Marshal(fortune)
	if err != nil {
		return fmt.Errorf("encode fortune: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO daily_access (user_id, last_access, fortune) VALUES (?, ?, ?)",
		userID, issuedAt.UTC(), string(fortuneJSON),
	)
	if err != nil {
		return fmt.Errorf("record daily access: %w", err)
	}
	return nil
}
