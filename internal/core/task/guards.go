package task

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

// EnqueueContext provides context for enqueue guards.
type EnqueueContext struct {
	Name       string
	Reponame   string
	Registered bool // whether a handler is registered for Name
}

// CanEnqueue evaluates whether a task may enter the queue.
// Rules:
// - a handler must be registered for the task name
// - the task must target a repository
func CanEnqueue(ctx EnqueueContext) GuardResult {
	if !ctx.Registered {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no handler registered for task %q", ctx.Name),
		}
	}
	if ctx.Reponame == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("task %q has no repository name", ctx.Name),
		}
	}
	return GuardResult{Allowed: true}
}
