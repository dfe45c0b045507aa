// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"encoding/json"
)

// KVStore defines the secondary port for named JSON value persistence.
// The saved-fix store keeps its record list under a single key; the
// on-disk format beyond get/set of a named value is an adapter concern.
type KVStore interface {
	// GetValue retrieves the raw JSON stored under key. A missing key
	// returns (nil, nil); callers substitute their own default.
	GetValue(ctx context.Context, key string) (json.RawMessage, error)

	// SetValue stores raw JSON under key, replacing any previous value.
	SetValue(ctx context.Context, key string, value json.RawMessage) error
}

// ActivityLogger defines the secondary port for the audit trail of staging
// and submission events.
type ActivityLogger interface {
	// LogEvent records an event ("staged", "submitted", "failed", "cleaned")
	// for a repository with free-form detail.
	LogEvent(ctx context.Context, reponame, event, detail string) error
}
