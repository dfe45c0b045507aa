package fix

import "errors"

// Error kinds surfaced by staging and submission. Callers branch on these
// with errors.Is rather than on concrete types.
var (
	// ErrProcessingFailed means staging could not identify a distinct typo
	// in the staged diff. Fatal to the staging attempt only.
	ErrProcessingFailed = errors.New("could not locate a distinct typo in the staged diff")

	// ErrInvalidBatch means an empty or repository-inconsistent batch was
	// handed to the policy step. Fatal to the task; no terminal task may be
	// enqueued.
	ErrInvalidBatch = errors.New("invalid fix batch")

	// ErrMalformedArtifact means a commit/issue artifact file does not have
	// the required blank second line.
	ErrMalformedArtifact = errors.New("artifact needs a blank second line")
)
