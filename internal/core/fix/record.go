// Package fix contains the pure business logic for saved fix records.
// Guards are pure functions that evaluate preconditions without side effects.
package fix

import "sort"

// Record is one detected textual correction awaiting submission.
type Record struct {
	Reponame  string   `json:"reponame"`
	RepoPath  string   `json:"repodir"`
	DelWord   string   `json:"del_word"`
	AddWord   string   `json:"add_word"`
	FilePaths []string `json:"file_paths"`
}

// Batch is the set of records being submitted together for one repository.
// All records in a batch share the same RepoPath. A batch is ephemeral: it is
// assembled at submit time and travels by value on the task chain.
type Batch []Record

// RepoPath returns the working copy shared by all records in the batch.
// Call ValidateBatch first; an empty batch returns "".
func (b Batch) RepoPath() string {
	if len(b) == 0 {
		return ""
	}
	return b[0].RepoPath
}

// FilePaths returns the distinct file paths across the whole batch, sorted.
func (b Batch) FilePaths() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, rec := range b {
		for _, p := range rec.FilePaths {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}
	sort.Strings(paths)
	return paths
}
