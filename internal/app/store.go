// Package app contains the application layer - the staging service and the
// submission pipeline handlers driven by the engine worker.
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/nitfix/internal/core/fix"
	"github.com/example/nitfix/internal/ports/secondary"
)

// MultiSaveKey is the store key holding the list of pending fix records.
const MultiSaveKey = "repository_saves_multi"

// loadFixes reads every pending fix record; a missing key is an empty list.
func loadFixes(ctx context.Context, store secondary.KVStore) ([]fix.Record, error) {
	raw, err := store.GetValue(ctx, MultiSaveKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved fixes: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var records []fix.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse saved fixes: %w", err)
	}
	return records, nil
}

// storeFixes replaces the pending fix record list.
func storeFixes(ctx context.Context, store secondary.KVStore, records []fix.Record) error {
	if records == nil {
		records = []fix.Record{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal saved fixes: %w", err)
	}
	if err := store.SetValue(ctx, MultiSaveKey, raw); err != nil {
		return fmt.Errorf("failed to store saved fixes: %w", err)
	}
	return nil
}
