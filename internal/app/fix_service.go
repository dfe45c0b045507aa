package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/example/nitfix/internal/core/fix"
	"github.com/example/nitfix/internal/ports/primary"
	"github.com/example/nitfix/internal/ports/secondary"
)

var wordPattern = regexp.MustCompile("[a-zA-Z]+")

// FixServiceImpl implements the FixService interface.
type FixServiceImpl struct {
	store    secondary.KVStore
	git      secondary.Git
	activity secondary.ActivityLogger
}

// NewFixService creates a new FixService with injected dependencies.
func NewFixService(store secondary.KVStore, git secondary.Git, activity secondary.ActivityLogger) *FixServiceImpl {
	return &FixServiceImpl{store: store, git: git, activity: activity}
}

// StageFix extracts the correction from the staged diff of the working copy
// and appends it to the saved-fix store.
func (s *FixServiceImpl) StageFix(ctx context.Context, reponame, repoPath string) (*fix.Record, error) {
	diff, err := s.git.StagedDiff(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged diff: %w", err)
	}

	rec, err := extractTypo(diff)
	if err != nil {
		return nil, err
	}
	rec.Reponame = reponame
	rec.RepoPath = repoPath

	if err := fix.CanSaveRecord(*rec).Error(); err != nil {
		return nil, err
	}

	records, err := loadFixes(ctx, s.store)
	if err != nil {
		return nil, err
	}
	records = append(records, *rec)
	if err := storeFixes(ctx, s.store, records); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("%s -> %s over %s", rec.DelWord, rec.AddWord, strings.Join(rec.FilePaths, ", "))
	if err := s.activity.LogEvent(ctx, reponame, "staged", detail); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListFixes returns every pending record, across all repositories.
func (s *FixServiceImpl) ListFixes(ctx context.Context) ([]fix.Record, error) {
	return loadFixes(ctx, s.store)
}

// ClearFixes drops all pending records.
func (s *FixServiceImpl) ClearFixes(ctx context.Context) error {
	return storeFixes(ctx, s.store, nil)
}

// extractTypo finds the first differing word pair in a staged diff, along
// with the ordered, deduplicated file paths it touches. A diff with no
// removed/added lines or no differing pair is fix.ErrProcessingFailed.
func extractTypo(diff string) (*fix.Record, error) {
	var delLines, addLines, filePaths []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "--- a/"):
			path := line[len("--- a/"):]
			if !seen[path] {
				seen[path] = true
				filePaths = append(filePaths, path)
			}
		case strings.HasPrefix(line, "--- "):
		case strings.HasPrefix(line, "+++ "):
		case strings.HasPrefix(line, "-"):
			delLines = append(delLines, line[1:])
		case strings.HasPrefix(line, "+"):
			addLines = append(addLines, line[1:])
		}
	}

	if len(delLines) == 0 || len(addLines) == 0 {
		return nil, fmt.Errorf("%w: could not read diff", fix.ErrProcessingFailed)
	}

	delWords := wordPattern.FindAllString(delLines[0], -1)
	addWords := wordPattern.FindAllString(addLines[0], -1)
	for i := 0; i < len(delWords) && i < len(addWords); i++ {
		if delWords[i] != addWords[i] {
			return &fix.Record{
				DelWord:   delWords[i],
				AddWord:   addWords[i],
				FilePaths: filePaths,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: could not locate typo", fix.ErrProcessingFailed)
}

// Ensure FixServiceImpl implements the interface
var _ primary.FixService = (*FixServiceImpl)(nil)
