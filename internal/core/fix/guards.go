package fix

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanSaveRecord evaluates whether a staged record may enter the store.
// Rules:
// - the removed and added words must differ
// - at least one file path must be present
func CanSaveRecord(rec Record) GuardResult {
	if rec.DelWord == rec.AddWord {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("removed and added word are both %q", rec.AddWord),
		}
	}
	if len(rec.FilePaths) == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "fix record has no file paths",
		}
	}
	return GuardResult{Allowed: true}
}

// ValidateBatch checks that a batch is submittable: non-empty and with every
// record agreeing on the working copy. Violations are reported as
// ErrInvalidBatch so the policy step can refuse to proceed.
func ValidateBatch(b Batch) error {
	if len(b) == 0 {
		return fmt.Errorf("%w: no fixes to prepare", ErrInvalidBatch)
	}
	first := b[0].RepoPath
	for _, rec := range b[1:] {
		if rec.RepoPath != first {
			return fmt.Errorf("%w: mismatch in repositories preparing commit (%s vs %s)",
				ErrInvalidBatch, first, rec.RepoPath)
		}
	}
	return nil
}
