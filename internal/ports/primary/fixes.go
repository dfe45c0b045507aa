// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces the CLI and web layers call into.
package primary

import (
	"context"

	"github.com/example/nitfix/internal/core/fix"
)

// FixService manages the saved-fix store: staging new records from a
// working copy and inspecting or resetting what is pending.
type FixService interface {
	// StageFix extracts the correction from the staged diff of the working
	// copy at repoPath and saves it under reponame. Returns
	// fix.ErrProcessingFailed when no distinct typo can be identified.
	StageFix(ctx context.Context, reponame, repoPath string) (*fix.Record, error)

	// ListFixes returns every pending record, across all repositories.
	ListFixes(ctx context.Context) ([]fix.Record, error)

	// ClearFixes drops all pending records.
	ClearFixes(ctx context.Context) error
}
