package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/nitfix/internal/core/fix"
)

func batchOfOne() fix.Batch {
	return fix.Batch{{
		Reponame:  "up/widget",
		RepoPath:  "/tmp/widget",
		DelWord:   "recieve",
		AddWord:   "receive",
		FilePaths: []string{"docs/usage.md"},
	}}
}

func batchOfTwo() fix.Batch {
	return append(batchOfOne(), fix.Record{
		Reponame:  "up/widget",
		RepoPath:  "/tmp/widget",
		DelWord:   "teh",
		AddWord:   "the",
		FilePaths: []string{"README.md", "docs/usage.md"},
	})
}

func TestCommitTextSingle(t *testing.T) {
	got := commitText(batchOfOne())
	lines := strings.Split(got, "\n")
	if lines[0] != "docs: fix simple typo, recieve -> receive" {
		t.Errorf("title = %q", lines[0])
	}
	if lines[1] != "" {
		t.Errorf("second line = %q, want blank", lines[1])
	}
	if !strings.Contains(got, "There is a small typo in docs/usage.md.") {
		t.Errorf("body missing file reference:\n%s", got)
	}
}

func TestCommitTextAggregates(t *testing.T) {
	got := commitText(batchOfTwo())
	if !strings.HasPrefix(got, "docs: Fix a few typos\n\n") {
		t.Errorf("aggregate title wrong:\n%s", got)
	}
	// shared path listed once, sorted with the rest
	if strings.Count(got, "- docs/usage.md") != 1 {
		t.Errorf("shared path not deduplicated:\n%s", got)
	}
	for _, want := range []string{"- README.md", "- Should read `receive` rather than `recieve`.", "- Should read `the` rather than `teh`."} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
}

func TestClosingCommitTextAppendsIssueRef(t *testing.T) {
	got := closingCommitText(batchOfOne(), 42)
	if !strings.HasSuffix(got, "Closes #42\n") {
		t.Errorf("missing closes line:\n%s", got)
	}
	if !strings.HasPrefix(got, "docs: fix simple typo, recieve -> receive\n\n") {
		t.Errorf("closing text changed the title:\n%s", got)
	}
}

func TestIssueTextFullTemplate(t *testing.T) {
	title, body := issueText(batchOfOne(), true, "footer")
	if title != "Fix simple typo: recieve -> receive" {
		t.Errorf("title = %q", title)
	}
	for _, want := range []string{"[x] Bug (Typo)", "# Steps to Replicate", "Search for `recieve`.", "Should read `receive`.", "footer"} {
		if !strings.Contains(body, want) {
			t.Errorf("full body missing %q:\n%s", want, body)
		}
	}
}

func TestIssueTextShortTemplate(t *testing.T) {
	title, body := issueText(batchOfTwo(), false, "")
	if title != "Fix a few typos" {
		t.Errorf("title = %q", title)
	}
	if strings.Contains(body, "# Steps to Replicate") {
		t.Errorf("short body carries the full template:\n%s", body)
	}
	if !strings.Contains(body, "Should read `the` rather than `teh`.") {
		t.Errorf("short body missing word pair:\n%s", body)
	}
}

func TestNoteWithPreparedBranch(t *testing.T) {
	got := note("issue", "", "https://github.com/o/r/pull/new/b", "octo")
	if !strings.Contains(got, DefaultNoteURL) {
		t.Errorf("empty noteURL did not fall back to default:\n%s", got)
	}
	if !strings.Contains(got, "request @octo create the PR") {
		t.Errorf("missing login credit:\n%s", got)
	}
	if !strings.Contains(got, "https://github.com/o/r/pull/new/b") {
		t.Errorf("missing prepared-branch link:\n%s", got)
	}
}

func TestParseCommitLike(t *testing.T) {
	title, body, err := parseCommitLike("a title\n\nthe body\nmore body\n")
	if err != nil {
		t.Fatalf("parseCommitLike: %v", err)
	}
	if title != "a title" {
		t.Errorf("title = %q", title)
	}
	if body != "the body\nmore body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseCommitLikeRejectsMalformed(t *testing.T) {
	for _, content := range []string{"", "only a title", "title\nnot blank\nbody"} {
		if _, _, err := parseCommitLike(content); !errors.Is(err, fix.ErrMalformedArtifact) {
			t.Errorf("parseCommitLike(%q) err = %v, want ErrMalformedArtifact", content, err)
		}
	}
}
