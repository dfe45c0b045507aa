// Package git contains the exec-based git adapter.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandError wraps a failed git invocation so callers can distinguish
// VCS failures from other error kinds with errors.As.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.Args, " "), e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// runGit executes a git command in repoPath and returns stdout. It is a
// package-level variable so tests can replace it with a mock.
var runGit = func(ctx context.Context, repoPath string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &CommandError{Args: args, Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}

// Adapter implements secondary.Git by shelling out to the git binary.
type Adapter struct{}

// NewAdapter creates a new git adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// StagedDiff returns the staged diff text for the working copy.
func (a *Adapter) StagedDiff(ctx context.Context, repoPath string) (string, error) {
	return runGit(ctx, repoPath, "diff", "--staged")
}

// CurrentBranch returns the short name of the checked out branch.
func (a *Adapter) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	output, err := runGit(ctx, repoPath, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// Commit creates a commit taking its message from msgFile.
func (a *Adapter) Commit(ctx context.Context, repoPath, msgFile string) error {
	_, err := runGit(ctx, repoPath, "commit", "-F", msgFile)
	return err
}

// Push pushes localRef to remoteRef on origin.
func (a *Adapter) Push(ctx context.Context, repoPath, localRef, remoteRef string) error {
	_, err := runGit(ctx, repoPath, "push", "origin", localRef+":"+remoteRef)
	return err
}

// AmendCommit rewrites the tip commit message from msgFile.
func (a *Adapter) AmendCommit(ctx context.Context, repoPath, msgFile string) error {
	_, err := runGit(ctx, repoPath, "commit", "-F", msgFile, "--amend")
	return err
}

// ForcePush force-pushes localRef to remoteRef on origin.
func (a *Adapter) ForcePush(ctx context.Context, repoPath, localRef, remoteRef string) error {
	_, err := runGit(ctx, repoPath, "push", "origin", "-f", localRef+":"+remoteRef)
	return err
}
