package secondary

import "context"

// Git defines the secondary port for version control operations on a
// working copy. Every call is a failable remote or local git invocation;
// failures surface as the adapter's CommandError kind.
type Git interface {
	// StagedDiff returns the staged diff text for the working copy.
	StagedDiff(ctx context.Context, repoPath string) (string, error)

	// CurrentBranch returns the short name of the checked out branch.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)

	// Commit creates a commit taking its message from msgFile.
	Commit(ctx context.Context, repoPath, msgFile string) error

	// Push pushes localRef to remoteRef on origin.
	Push(ctx context.Context, repoPath, localRef, remoteRef string) error

	// AmendCommit rewrites the tip commit message from msgFile.
	AmendCommit(ctx context.Context, repoPath, msgFile string) error

	// ForcePush force-pushes localRef to remoteRef on origin.
	ForcePush(ctx context.Context, repoPath, localRef, remoteRef string) error
}
