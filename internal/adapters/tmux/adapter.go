// Package tmux contains the gotmux-based session adapter used to open
// inspection shells on repository working copies.
package tmux

import (
	"fmt"

	"github.com/GianlucaP106/gotmux/gotmux"

	"github.com/example/nitfix/internal/ports/secondary"
)

// SessionName is the single tmux session holding nitfix inspection windows.
const SessionName = "nitfix"

// GotmuxAdapter wraps the gotmux library for window lifecycle management.
type GotmuxAdapter struct {
	tmux *gotmux.Tmux
}

// NewGotmuxAdapter creates a new gotmux adapter.
func NewGotmuxAdapter() (*GotmuxAdapter, error) {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("failed to create tmux client: %w", err)
	}
	return &GotmuxAdapter{tmux: tmux}, nil
}

// OpenRepoWindow opens (or reuses) a window rooted at repoPath on the nitfix
// session, named after the repository. The session is created on first use.
func (g *GotmuxAdapter) OpenRepoWindow(reponame, repoPath string) error {
	session, err := g.getSession(SessionName)
	if err != nil {
		return err
	}

	if session == nil {
		session, err = g.tmux.NewSession(&gotmux.SessionOptions{
			Name:           SessionName,
			StartDirectory: repoPath,
		})
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		// The auto-created first window becomes the repo window
		windows, err := session.ListWindows()
		if err != nil {
			return fmt.Errorf("failed to list windows: %w", err)
		}
		if len(windows) == 0 {
			return fmt.Errorf("no windows found in new session")
		}
		return windows[0].Rename(reponame)
	}

	windows, err := session.ListWindows()
	if err != nil {
		return fmt.Errorf("failed to list windows: %w", err)
	}
	for _, w := range windows {
		if w.Name == reponame {
			// Window already open; nothing to do
			return nil
		}
	}

	_, err = session.NewWindow(&gotmux.NewWindowOptions{
		WindowName:     reponame,
		StartDirectory: repoPath,
		DoNotAttach:    true,
	})
	if err != nil {
		return fmt.Errorf("failed to create window %s: %w", reponame, err)
	}
	return nil
}

// getSession returns the gotmux session by name, or nil if not found.
func (g *GotmuxAdapter) getSession(name string) (*gotmux.Session, error) {
	sessions, err := g.tmux.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, s := range sessions {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

// Ensure GotmuxAdapter implements the interface
var _ secondary.SessionManager = (*GotmuxAdapter)(nil)
