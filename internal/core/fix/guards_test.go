package fix

import (
	"errors"
	"testing"
)

func TestCanSaveRecord(t *testing.T) {
	cases := []struct {
		name    string
		rec     Record
		allowed bool
	}{
		{
			name: "valid record",
			rec: Record{
				Reponame:  "demo",
				RepoPath:  "/tmp/demo",
				DelWord:   "teh",
				AddWord:   "the",
				FilePaths: []string{"README.md"},
			},
			allowed: true,
		},
		{
			name: "identical words",
			rec: Record{
				DelWord:   "the",
				AddWord:   "the",
				FilePaths: []string{"README.md"},
			},
			allowed: false,
		},
		{
			name: "no file paths",
			rec: Record{
				DelWord: "teh",
				AddWord: "the",
			},
			allowed: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CanSaveRecord(tc.rec)
			if result.Allowed != tc.allowed {
				t.Errorf("CanSaveRecord() allowed = %v, want %v (reason: %s)",
					result.Allowed, tc.allowed, result.Reason)
			}
			if !tc.allowed && result.Error() == nil {
				t.Error("expected Error() to be non-nil for disallowed guard")
			}
		})
	}
}

func TestValidateBatch(t *testing.T) {
	if err := ValidateBatch(nil); !errors.Is(err, ErrInvalidBatch) {
		t.Errorf("empty batch: got %v, want ErrInvalidBatch", err)
	}

	mixed := Batch{
		{Reponame: "demo", RepoPath: "/tmp/demo"},
		{Reponame: "demo", RepoPath: "/tmp/other"},
	}
	if err := ValidateBatch(mixed); !errors.Is(err, ErrInvalidBatch) {
		t.Errorf("mixed batch: got %v, want ErrInvalidBatch", err)
	}

	ok := Batch{
		{Reponame: "demo", RepoPath: "/tmp/demo", DelWord: "teh", AddWord: "the"},
		{Reponame: "demo", RepoPath: "/tmp/demo", DelWord: "wierd", AddWord: "weird"},
	}
	if err := ValidateBatch(ok); err != nil {
		t.Errorf("consistent batch: got %v, want nil", err)
	}
}

func TestBatchFilePaths(t *testing.T) {
	b := Batch{
		{FilePaths: []string{"docs/x.md", "README.md"}},
		{FilePaths: []string{"README.md", "a.md"}},
	}
	got := b.FilePaths()
	want := []string{"README.md", "a.md", "docs/x.md"}
	if len(got) != len(want) {
		t.Fatalf("FilePaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilePaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
