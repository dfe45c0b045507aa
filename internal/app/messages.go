package app

import (
	"fmt"
	"strings"

	"github.com/example/nitfix/internal/core/fix"
)

// Artifact files written into the working copy root during submission.
const (
	CommitArtifact = "__commit__.txt"
	IssueArtifact  = "__issue__.txt"
	NoIssuesMarker = "__no_issues__.txt"
)

// DefaultNoteURL identifies the automation in every generated body.
const DefaultNoteURL = "https://github.com/example/nitfix/blob/master/docs/NOTE.md"

// note builds the provenance footer for a generated body. When prURL is set
// the footer also explains the prepared branch and credits login.
func note(kind, noteURL, prURL, login string) string {
	if noteURL == "" {
		noteURL = DefaultNoteURL
	}
	header := fmt.Sprintf("Semi-automated %s generated by\n%s", kind, noteURL)
	if prURL == "" {
		return header
	}
	return fmt.Sprintf(`%s

To avoid wasting CI processing resources a branch with the fix has been
prepared but a pull request has not yet been created. A pull request fixing
the issue can be prepared from the link below, feel free to create it or
request @%s create the PR.

%s

Thanks.
`, header, login, prURL)
}

// commitText generates the commit message for a batch. A batch of one uses
// the single-fix template; larger batches aggregate every distinct file path
// and every word pair.
func commitText(batch fix.Batch) string {
	if len(batch) == 1 {
		rec := batch[0]
		return fmt.Sprintf(`docs: fix simple typo, %s -> %s

There is a small typo in %s.

Should read `+"`%s`"+` rather than `+"`%s`"+`.
`, rec.DelWord, rec.AddWord, strings.Join(rec.FilePaths, ", "), rec.AddWord, rec.DelWord)
	}

	var files strings.Builder
	for _, p := range batch.FilePaths() {
		fmt.Fprintf(&files, "- %s\n", p)
	}
	var lines strings.Builder
	for _, rec := range batch {
		fmt.Fprintf(&lines, "- Should read `%s` rather than `%s`.\n", rec.AddWord, rec.DelWord)
	}
	return fmt.Sprintf(`docs: Fix a few typos

There are small typos in:
%s
Fixes:
%s`, files.String(), lines.String())
}

// closingCommitText regenerates the commit message with the issue reference
// appended, used after the issue number is known.
func closingCommitText(batch fix.Batch, issueNum int) string {
	var body string
	if len(batch) == 1 {
		rec := batch[0]
		body = fmt.Sprintf(`docs: fix simple typo, %s -> %s

There is a small typo in %s.
`, rec.DelWord, rec.AddWord, strings.Join(rec.FilePaths, ", "))
	} else {
		var files strings.Builder
		for _, p := range batch.FilePaths() {
			fmt.Fprintf(&files, "- %s\n", p)
		}
		body = fmt.Sprintf(`docs: Fix a few typos

There are small typos in:
%s`, files.String())
	}
	return fmt.Sprintf("%s\nCloses #%d\n", body, issueNum)
}

// issueText generates the issue title and body for a batch. full selects the
// long replication-steps template; prNote, when non-empty, is the provenance
// footer (already containing the prepared-branch link if any).
func issueText(batch fix.Batch, full bool, prNote string) (title, body string) {
	files := strings.Join(batch.FilePaths(), ", ")

	if len(batch) == 1 {
		rec := batch[0]
		title = fmt.Sprintf("Fix simple typo: %s -> %s", rec.DelWord, rec.AddWord)
		if full {
			body = fmt.Sprintf(`# Issue Type

[x] Bug (Typo)

# Steps to Replicate

1. Examine %s.
2. Search for `+"`%s`"+`.

# Expected Behaviour

1. Should read `+"`%s`"+`.

%s
`, files, rec.DelWord, rec.AddWord, prNote)
			return title, body
		}
		body = fmt.Sprintf(`There is a small typo in %s.
Should read `+"`%s`"+` rather than `+"`%s`"+`.

%s
`, files, rec.AddWord, rec.DelWord, prNote)
		return title, body
	}

	title = "Fix a few typos"
	if full {
		var steps, expected strings.Builder
		for i, rec := range batch {
			fmt.Fprintf(&steps, "%d. Search for `%s`.\n", i+1, rec.DelWord)
			fmt.Fprintf(&expected, "%d. Should read `%s`.\n", i+1, rec.AddWord)
		}
		body = fmt.Sprintf(`# Issue Type

[x] Bug (Typo)

# Steps to Replicate

Examine %s.
%s
# Expected Behaviour

%s
%s
`, files, steps.String(), expected.String(), prNote)
		return title, body
	}

	var lines strings.Builder
	for _, rec := range batch {
		fmt.Fprintf(&lines, "Should read `%s` rather than `%s`.\n", rec.AddWord, rec.DelWord)
	}
	body = fmt.Sprintf(`There are small typos in %s.
%s
%s
`, files, lines.String(), prNote)
	return title, body
}

// parseCommitLike splits an artifact into its title line and body. The
// second line must be blank; anything else is fix.ErrMalformedArtifact.
func parseCommitLike(content string) (title, body string, err error) {
	lines := strings.SplitN(content, "\n", 3)
	if len(lines) < 2 || strings.TrimSpace(lines[1]) != "" {
		return "", "", fix.ErrMalformedArtifact
	}
	title = strings.TrimSpace(lines[0])
	if len(lines) == 3 {
		body = lines[2]
	}
	return title, body, nil
}
