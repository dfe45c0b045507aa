// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// KVStore implements secondary.KVStore with SQLite.
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a new SQLite key-value store.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// GetValue retrieves the raw JSON stored under key. A missing key returns
// (nil, nil) so callers can substitute a default.
func (s *KVStore) GetValue(ctx context.Context, key string) (json.RawMessage, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value for %s: %w", key, err)
	}
	return json.RawMessage(value), nil
}

// SetValue stores raw JSON under key, replacing any previous value.
func (s *KVStore) SetValue(ctx context.Context, key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", key)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to set value for %s: %w", key, err)
	}
	return nil
}
