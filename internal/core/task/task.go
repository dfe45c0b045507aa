// Package task contains the pure business logic for queued work units.
// Guards are pure functions that evaluate preconditions without side effects.
package task

import "github.com/example/nitfix/internal/core/fix"

// Dispatch names form a fixed, closed set. Any future submission path must be
// added here together with a handler registration; names are never invented
// at call sites.
const (
	Submit         = "submit"
	PlainPR        = "plain_pr"
	FullPR         = "full_pr"
	IssueAndBranch = "issue_and_branch"
	Cleanup        = "cleanup"
)

// Names lists every registered dispatch name.
func Names() []string {
	return []string{Submit, PlainPR, FullPR, IssueAndBranch, Cleanup}
}

// Task is one unit of work for the controller. Tasks are never mutated after
// enqueue; handlers that chain follow-up work enqueue fresh tasks.
type Task struct {
	Name        string
	Interactive bool
	Priority    int
	Reponame    string
	Fixes       fix.Batch
}

// Terminal reports whether the task name ends the submission decision with
// concrete side effects.
func Terminal(name string) bool {
	switch name {
	case PlainPR, FullPR, IssueAndBranch:
		return true
	}
	return false
}
