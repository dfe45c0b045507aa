// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WorkspaceAdapter implements secondary.Workspace for working copy access.
type WorkspaceAdapter struct{}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
func NewWorkspaceAdapter() *WorkspaceAdapter {
	return &WorkspaceAdapter{}
}

// HasPath reports whether rel exists under repoPath (file or directory).
func (a *WorkspaceAdapter) HasPath(repoPath, rel string) bool {
	_, err := os.Stat(filepath.Join(repoPath, rel))
	return err == nil
}

// WriteArtifact writes a submission artifact into the working copy root.
// Artifact names are confined to the root (no path separators).
func (a *WorkspaceAdapter) WriteArtifact(repoPath, name, content string) error {
	if strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("artifact name %q must not contain path separators", name)
	}
	path := filepath.Join(repoPath, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return nil
}

// ReadArtifact reads a submission artifact from the working copy root.
func (a *WorkspaceAdapter) ReadArtifact(repoPath, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(repoPath, name))
	if err != nil {
		return "", fmt.Errorf("failed to read artifact %s: %w", name, err)
	}
	return string(data), nil
}

// RemoveWorkingCopy deletes the entire working copy tree.
func (a *WorkspaceAdapter) RemoveWorkingCopy(repoPath string) error {
	if repoPath == "" || repoPath == string(os.PathSeparator) {
		return fmt.Errorf("refusing to remove %q", repoPath)
	}
	if err := os.RemoveAll(repoPath); err != nil {
		return fmt.Errorf("failed to remove working copy %s: %w", repoPath, err)
	}
	return nil
}
