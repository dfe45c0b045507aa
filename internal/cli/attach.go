package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/nitfix/internal/adapters/tmux"
	"github.com/example/nitfix/internal/wire"
)

// AttachCmd returns the attach command
func AttachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attach <owner/repo>",
		Short: "Open a tmux window on the repository's working copy",
		Long: `Open (or reuse) a window for the repository on the nitfix tmux
session and attach to it. The working copy path comes from the pending fixes
when one is saved, otherwise from the configured workspace directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reponame := args[0]

			repoPath, err := resolveRepoPath(cmd, reponame)
			if err != nil {
				return err
			}

			sessions, err := wire.SessionManager()
			if err != nil {
				return err
			}
			if err := sessions.OpenRepoWindow(reponame, repoPath); err != nil {
				return err
			}

			tmuxPath, err := exec.LookPath("tmux")
			if err != nil {
				return fmt.Errorf("tmux not found in PATH: %w", err)
			}
			// Replace the current process so the user lands in tmux directly
			execArgs := []string{"tmux", "attach", "-t", tmux.SessionName}
			if err := syscall.Exec(tmuxPath, execArgs, os.Environ()); err != nil {
				return fmt.Errorf("failed to exec tmux attach: %w", err)
			}
			return nil
		},
	}
}

// resolveRepoPath finds the working copy for a repository: a saved fix
// knows its path, otherwise fall back to <workspace_dir>/<repo short name>.
func resolveRepoPath(cmd *cobra.Command, reponame string) (string, error) {
	records, err := wire.FixService().ListFixes(cmd.Context())
	if err != nil {
		return "", err
	}
	for _, rec := range records {
		if rec.Reponame == reponame {
			return rec.RepoPath, nil
		}
	}

	cfg := wire.Config()
	if cfg.WorkspaceDir == "" {
		return "", fmt.Errorf("no saved fix for %s and no workspace_dir configured", reponame)
	}
	short := reponame
	if i := strings.LastIndex(reponame, "/"); i >= 0 {
		short = reponame[i+1:]
	}
	return filepath.Join(cfg.WorkspaceDir, short), nil
}
