// Package github contains the gh-based code hosting adapter.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/example/nitfix/internal/ports/secondary"
)

// APIError wraps a failed hosting API call so callers can distinguish it
// from other error kinds with errors.As.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ghRun executes a gh subcommand and returns stdout. It is a package-level
// variable so tests can replace it with a mock.
var ghRun = func(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "gh", args...).Output()
}

// Adapter implements secondary.Hosting by shelling out to the gh CLI.
// Issues and pull requests are filed against the upstream repository.
type Adapter struct{}

// NewAdapter creates a new gh adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// CreateIssue files an issue on the upstream repository and returns its number.
func (a *Adapter) CreateIssue(ctx context.Context, reponame, title, body string) (int, error) {
	out, err := ghRun(ctx, "api", "repos/"+reponame+"/issues",
		"-f", "title="+title,
		"-f", "body="+body)
	if err != nil {
		return 0, &APIError{Op: "create issue", Err: err}
	}

	var issue struct {
		Number int `json:"number"`
	}
	if err := json.Unmarshal(out, &issue); err != nil {
		return 0, &APIError{Op: "create issue", Err: fmt.Errorf("parsing response: %w", err)}
	}
	return issue.Number, nil
}

// CreatePullRequest opens a pull request from fromBranch to toBranch.
// fromBranch may carry a fork qualifier ("user:branch").
func (a *Adapter) CreatePullRequest(ctx context.Context, reponame, title, body, fromBranch, toBranch string) (*secondary.PullRequest, error) {
	out, err := ghRun(ctx, "api", "repos/"+reponame+"/pulls",
		"-f", "title="+title,
		"-f", "body="+body,
		"-f", "head="+fromBranch,
		"-f", "base="+toBranch)
	if err != nil {
		return nil, &APIError{Op: "create pull request", Err: err}
	}

	var pr struct {
		Number  int    `json:"number"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.Unmarshal(out, &pr); err != nil {
		return nil, &APIError{Op: "create pull request", Err: fmt.Errorf("parsing response: %w", err)}
	}
	return &secondary.PullRequest{Number: pr.Number, URL: pr.HTMLURL}, nil
}

// CurrentUserLogin returns the login of the authenticated user.
func (a *Adapter) CurrentUserLogin(ctx context.Context) (string, error) {
	out, err := ghRun(ctx, "api", "user", "--jq", ".login")
	if err != nil {
		return "", &APIError{Op: "current user", Err: err}
	}
	login := strings.TrimSpace(string(out))
	if login == "" {
		return "", &APIError{Op: "current user", Err: fmt.Errorf("empty login in response")}
	}
	return login, nil
}
