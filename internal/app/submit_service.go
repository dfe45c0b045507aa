package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/nitfix/internal/adapters/git"
	"github.com/example/nitfix/internal/adapters/github"
	"github.com/example/nitfix/internal/config"
	"github.com/example/nitfix/internal/core/fix"
	"github.com/example/nitfix/internal/core/task"
	"github.com/example/nitfix/internal/engine"
	"github.com/example/nitfix/internal/ports/primary"
	"github.com/example/nitfix/internal/ports/secondary"
)

// SubmissionService implements the submission pipeline: the submit decision
// task, the three terminal tasks, and cleanup.
type SubmissionService struct {
	controller *engine.Controller
	store      secondary.KVStore
	git        secondary.Git
	hosting    secondary.Hosting
	ws         secondary.Workspace
	activity   secondary.ActivityLogger
	cfg        *config.Config
}

// NewSubmissionService creates a SubmissionService with injected
// dependencies. Call Handlers to obtain the dispatch table, build the
// controller from it, then Bind the controller before enqueuing work.
func NewSubmissionService(
	store secondary.KVStore,
	gitPort secondary.Git,
	hosting secondary.Hosting,
	ws secondary.Workspace,
	activity secondary.ActivityLogger,
	cfg *config.Config,
) *SubmissionService {
	return &SubmissionService{
		store:    store,
		git:      gitPort,
		hosting:  hosting,
		ws:       ws,
		activity: activity,
		cfg:      cfg,
	}
}

// Handlers returns the fixed dispatch table for the engine controller.
func (s *SubmissionService) Handlers() map[string]engine.Handler {
	return map[string]engine.Handler{
		task.Submit:         s.submit,
		task.PlainPR:        s.plainPR,
		task.FullPR:         s.fullPR,
		task.IssueAndBranch: s.issueAndBranch,
		task.Cleanup:        s.cleanup,
	}
}

// Bind attaches the controller used for external enqueues.
func (s *SubmissionService) Bind(ctrl *engine.Controller) {
	s.controller = ctrl
}

// EnqueueSubmit queues a submit task for the repository's pending fixes.
func (s *SubmissionService) EnqueueSubmit(reponame string) error {
	if s.controller == nil {
		return fmt.Errorf("submission service has no controller bound")
	}
	return s.controller.Add(task.Task{
		Name:        task.Submit,
		Interactive: true,
		Reponame:    reponame,
	})
}

// submit collapses the repository's saved fixes into a batch, clears them
// from the store, and enqueues the terminal task chosen by the policy hook.
// The records are checked out at-most-once: the store is cleared before any
// downstream side effect runs.
func (s *SubmissionService) submit(c *engine.Context) error {
	ctx := context.Background()
	reponame := c.Task.Reponame

	all, err := loadFixes(ctx, s.store)
	if err != nil {
		return err
	}
	var batch fix.Batch
	var rest []fix.Record
	for _, rec := range all {
		if rec.Reponame == reponame {
			batch = append(batch, rec)
		} else {
			rest = append(rest, rec)
		}
	}
	if err := storeFixes(ctx, s.store, rest); err != nil {
		return err
	}

	if err := fix.ValidateBatch(batch); err != nil {
		return err
	}

	for _, rec := range batch {
		c.Send(fmt.Sprintf("Fix in %s: %s -> %s over %s",
			reponame, rec.DelWord, rec.AddWord, strings.Join(rec.FilePaths, ", ")))
	}

	next, err := s.choosePath(c, batch)
	if err != nil {
		return err
	}
	return c.Controller.Add(task.Task{
		Name:     next,
		Reponame: reponame,
		Fixes:    batch,
	})
}

// choosePath is the policy hook deciding the terminal task for a batch.
// The decision is data-driven over repository conventions:
//   - a repo with no issue template, PR template, or contributing guide
//     takes a plain pull request;
//   - otherwise the default is issue_and_branch, unless the operator of an
//     interactive submit asks for the pull request to be opened immediately.
func (s *SubmissionService) choosePath(c *engine.Context, batch fix.Batch) (string, error) {
	if s.checkIfPlainPR(batch.RepoPath()) {
		return task.PlainPR, nil
	}
	if c.Task.Interactive {
		immediate, err := c.Confirm("Repository has review conventions. Open the pull request immediately?", false)
		if err != nil {
			return "", err
		}
		if immediate {
			return task.FullPR, nil
		}
	}
	return task.IssueAndBranch, nil
}

// checkIfPlainPR reports whether the repository looks happy with just a
// pull request: none of the convention files are present.
func (s *SubmissionService) checkIfPlainPR(repoPath string) bool {
	conventions := []string{
		filepath.Join(".github", "ISSUE_TEMPLATE"),
		filepath.Join(".github", "pull_request_template.md"),
		"CONTRIBUTING.md",
	}
	for _, rel := range conventions {
		if s.ws.HasPath(repoPath, rel) {
			return false
		}
	}
	return true
}

// plainPR commits, pushes, and opens the pull request directly.
func (s *SubmissionService) plainPR(c *engine.Context) error {
	return s.finishTerminal(c, func(ctx context.Context) (string, error) {
		return s.plainPRFor(ctx, c.Task.Reponame, c.Task.Fixes)
	})
}

// fullPR files an issue first, then pushes the commit and opens a pull
// request that closes the issue.
func (s *SubmissionService) fullPR(c *engine.Context) error {
	return s.finishTerminal(c, func(ctx context.Context) (string, error) {
		return s.fullPRFor(ctx, c.Task.Reponame, c.Task.Fixes)
	})
}

// issueAndBranch pushes the fix branch and files an issue linking to the
// create-PR URL, leaving the pull request itself for a human. The
// __no_issues__.txt marker suppresses this path in favor of a plain PR.
func (s *SubmissionService) issueAndBranch(c *engine.Context) error {
	return s.finishTerminal(c, func(ctx context.Context) (string, error) {
		return s.issueAndBranchFor(ctx, c.Task.Reponame, c.Task.Fixes)
	})
}

// finishTerminal runs a terminal submission step with the outermost error
// policy applied: VCS and hosting failures become operator-facing status
// strings (reported, not propagated, never retried); anything else aborts
// the task. Cleanup is enqueued only on success, so a failed submission
// leaves the working copy in place for inspection.
func (s *SubmissionService) finishTerminal(c *engine.Context, step func(context.Context) (string, error)) error {
	ctx := context.Background()
	reponame := c.Task.Reponame

	status, err := step(ctx)
	if err != nil {
		if converted, ok := remoteFailureStatus(reponame, err); ok {
			c.Send(converted)
			return s.activity.LogEvent(ctx, reponame, "failed", err.Error())
		}
		return err
	}

	c.Send(status)
	if err := s.activity.LogEvent(ctx, reponame, "submitted", status); err != nil {
		return err
	}
	return s.addCleanup(c)
}

// remoteFailureStatus converts VCS and hosting API failures into their
// user-facing status strings. Other error kinds are left to propagate.
func remoteFailureStatus(reponame string, err error) (string, bool) {
	var cmdErr *git.CommandError
	if errors.As(err, &cmdErr) {
		return fmt.Sprintf("Failed to commit for %s.", reponame), true
	}
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Failed to create pr for %s.", reponame), true
	}
	return "", false
}

// addCleanup chains the finalization task after a successful submission.
func (s *SubmissionService) addCleanup(c *engine.Context) error {
	return c.Controller.Add(task.Task{
		Name:        task.Cleanup,
		Interactive: true,
		Priority:    20,
		Reponame:    c.Task.Reponame,
		Fixes:       c.Task.Fixes,
	})
}

// cleanup finalizes the working copy after a successful submission, asking
// the operator before removing the checkout.
func (s *SubmissionService) cleanup(c *engine.Context) error {
	ctx := context.Background()
	reponame := c.Task.Reponame
	repoPath := c.Task.Fixes.RepoPath()

	remove, err := c.Confirm(fmt.Sprintf("Submission for %s is done. Remove the working copy at %s?", reponame, repoPath), true)
	if err != nil {
		return err
	}
	if !remove || repoPath == "" {
		c.Send(fmt.Sprintf("Leaving working copy for %s in place", reponame))
		return nil
	}
	if err := s.ws.RemoveWorkingCopy(repoPath); err != nil {
		return err
	}
	c.Send(fmt.Sprintf("Removed working copy for %s", reponame))
	return s.activity.LogEvent(ctx, reponame, "cleaned", repoPath)
}

// plainPRFor creates and submits the standard PR.
func (s *SubmissionService) plainPRFor(ctx context.Context, reponame string, batch fix.Batch) (string, error) {
	if err := s.writeCommitArtifact(batch); err != nil {
		return "", err
	}
	return s.submitCommit(ctx, reponame, batch)
}

// fullPRFor files a full issue, then submits the PR closing it.
func (s *SubmissionService) fullPRFor(ctx context.Context, reponame string, batch fix.Batch) (string, error) {
	if err := s.writeIssueArtifact(batch, true, note("issue", s.cfg.NoteURL, "", "")); err != nil {
		return "", err
	}
	if _, err := s.submitIssue(ctx, reponame, batch); err != nil {
		return "", err
	}
	// submitIssue rewrote the commit artifact with the Closes line, so the
	// commit submitted here references the issue.
	return s.submitCommit(ctx, reponame, batch)
}

// issueAndBranchFor pushes a ready branch and files an issue linking to the
// create-PR URL, then amends the commit to reference the issue number.
func (s *SubmissionService) issueAndBranchFor(ctx context.Context, reponame string, batch fix.Batch) (string, error) {
	if s.ws.HasPath(batch.RepoPath(), NoIssuesMarker) {
		return s.plainPRFor(ctx, reponame, batch)
	}

	if err := s.writeCommitArtifact(batch); err != nil {
		return "", err
	}
	_, _, fromBranch, toBranch, err := s.prepareCommit(ctx, batch)
	if err != nil {
		return "", err
	}

	login, err := s.userLogin(ctx)
	if err != nil {
		return "", err
	}
	prURL := fmt.Sprintf("https://github.com/%s/%s/pull/new/%s", login, shortName(reponame), fromBranch)

	if err := s.writeIssueArtifact(batch, true, note("issue", s.cfg.NoteURL, prURL, login)); err != nil {
		return "", err
	}
	issueNum, err := s.submitIssue(ctx, reponame, batch)
	if err != nil {
		return "", err
	}

	repoPath := batch.RepoPath()
	if err := s.git.AmendCommit(ctx, repoPath, CommitArtifact); err != nil {
		return "", err
	}
	if err := s.git.ForcePush(ctx, repoPath, toBranch, fromBranch); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created issue #%d with prepared branch %s view at %s", issueNum, fromBranch, prURL), nil
}

// submitCommit pushes the prepared commit and opens the pull request.
func (s *SubmissionService) submitCommit(ctx context.Context, reponame string, batch fix.Batch) (string, error) {
	title, body, fromBranch, toBranch, err := s.prepareCommit(ctx, batch)
	if err != nil {
		return "", err
	}
	body += "\n" + note("pull request", s.cfg.NoteURL, "", "")

	login, err := s.userLogin(ctx)
	if err != nil {
		return "", err
	}
	pr, err := s.hosting.CreatePullRequest(ctx, reponame, title, body, login+":"+fromBranch, toBranch)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created PR #%d view at %s", pr.Number, pr.URL), nil
}

// prepareCommit commits from the commit artifact and pushes the fix branch.
// Returns the artifact title/body and the from/to branch names.
func (s *SubmissionService) prepareCommit(ctx context.Context, batch fix.Batch) (title, body, fromBranch, toBranch string, err error) {
	if err = fix.ValidateBatch(batch); err != nil {
		return "", "", "", "", err
	}
	repoPath := batch.RepoPath()

	content, err := s.ws.ReadArtifact(repoPath, CommitArtifact)
	if err != nil {
		return "", "", "", "", err
	}
	title, body, err = parseCommitLike(content)
	if err != nil {
		return "", "", "", "", fmt.Errorf("%w: %s", err, CommitArtifact)
	}

	if len(batch) == 1 {
		fromBranch = "bugfix_typo_" + strings.ReplaceAll(batch[0].AddWord, " ", "_")
	} else {
		fromBranch = "bugfix_typos"
	}

	toBranch, err = s.git.CurrentBranch(ctx, repoPath)
	if err != nil {
		return "", "", "", "", err
	}
	if toBranch == "" {
		toBranch = s.cfg.BaseBranch
	}
	if err = s.git.Commit(ctx, repoPath, CommitArtifact); err != nil {
		return "", "", "", "", err
	}
	if err = s.git.Push(ctx, repoPath, toBranch, fromBranch); err != nil {
		return "", "", "", "", err
	}
	return title, body, fromBranch, toBranch, nil
}

// submitIssue files the issue artifact and rewrites the commit artifact so
// the eventual commit closes the new issue.
func (s *SubmissionService) submitIssue(ctx context.Context, reponame string, batch fix.Batch) (int, error) {
	content, err := s.ws.ReadArtifact(batch.RepoPath(), IssueArtifact)
	if err != nil {
		return 0, err
	}
	title, body, err := parseCommitLike(content)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", err, IssueArtifact)
	}

	issueNum, err := s.hosting.CreateIssue(ctx, reponame, title, body)
	if err != nil {
		return 0, err
	}

	if err := s.ws.WriteArtifact(batch.RepoPath(), CommitArtifact, closingCommitText(batch, issueNum)); err != nil {
		return 0, err
	}
	return issueNum, nil
}

// writeCommitArtifact generates the commit message into the working copy.
func (s *SubmissionService) writeCommitArtifact(batch fix.Batch) error {
	if err := fix.ValidateBatch(batch); err != nil {
		return err
	}
	return s.ws.WriteArtifact(batch.RepoPath(), CommitArtifact, commitText(batch))
}

// writeIssueArtifact generates the issue text into the working copy.
func (s *SubmissionService) writeIssueArtifact(batch fix.Batch, full bool, prNote string) error {
	if err := fix.ValidateBatch(batch); err != nil {
		return err
	}
	title, body := issueText(batch, full, prNote)
	return s.ws.WriteArtifact(batch.RepoPath(), IssueArtifact, title+"\n\n"+body)
}

// userLogin resolves the fork owner, preferring the configured value over a
// hosting API round trip.
func (s *SubmissionService) userLogin(ctx context.Context) (string, error) {
	if s.cfg.GithubUser != "" {
		return s.cfg.GithubUser, nil
	}
	return s.hosting.CurrentUserLogin(ctx)
}

// shortName strips the owner from an owner/repo slug.
func shortName(reponame string) string {
	if i := strings.LastIndex(reponame, "/"); i >= 0 {
		return reponame[i+1:]
	}
	return reponame
}

// Ensure SubmissionService implements the interface
var _ primary.SubmitService = (*SubmissionService)(nil)
