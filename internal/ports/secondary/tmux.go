package secondary

// SessionManager defines the secondary port for attaching an inspection
// shell to a repository working copy.
type SessionManager interface {
	// OpenRepoWindow opens (or reuses) a tmux window rooted at repoPath,
	// named after the repository.
	OpenRepoWindow(reponame, repoPath string) error
}
