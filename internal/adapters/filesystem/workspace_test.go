package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasPath(t *testing.T) {
	repo := t.TempDir()
	if err := os.MkdirAll(filepath.Join(repo, ".github", "ISSUE_TEMPLATE"), 0755); err != nil {
		t.Fatal(err)
	}

	a := NewWorkspaceAdapter()
	if !a.HasPath(repo, filepath.Join(".github", "ISSUE_TEMPLATE")) {
		t.Error("HasPath() = false for existing directory")
	}
	if a.HasPath(repo, "CONTRIBUTING.md") {
		t.Error("HasPath() = true for missing file")
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	repo := t.TempDir()
	a := NewWorkspaceAdapter()

	content := "docs: fix simple typo, teh -> the\n\nbody\n"
	if err := a.WriteArtifact(repo, "__commit__.txt", content); err != nil {
		t.Fatalf("WriteArtifact() failed: %v", err)
	}
	got, err := a.ReadArtifact(repo, "__commit__.txt")
	if err != nil {
		t.Fatalf("ReadArtifact() failed: %v", err)
	}
	if got != content {
		t.Errorf("ReadArtifact() = %q, want %q", got, content)
	}
}

func TestWriteArtifactRejectsPaths(t *testing.T) {
	a := NewWorkspaceAdapter()
	if err := a.WriteArtifact(t.TempDir(), filepath.Join("..", "escape.txt"), ""); err == nil {
		t.Error("expected error for artifact name containing separator")
	}
}

func TestRemoveWorkingCopy(t *testing.T) {
	repo := t.TempDir()
	nested := filepath.Join(repo, "checkout")
	if err := os.MkdirAll(filepath.Join(nested, "docs"), 0755); err != nil {
		t.Fatal(err)
	}

	a := NewWorkspaceAdapter()
	if err := a.RemoveWorkingCopy(nested); err != nil {
		t.Fatalf("RemoveWorkingCopy() failed: %v", err)
	}
	if _, err := os.Stat(nested); !os.IsNotExist(err) {
		t.Error("working copy still present after removal")
	}
	if err := a.RemoveWorkingCopy(""); err == nil {
		t.Error("expected refusal for empty path")
	}
}
