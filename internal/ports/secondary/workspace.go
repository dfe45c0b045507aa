package secondary

// Workspace defines the secondary port for working copy file access:
// convention-file detection and submission artifact handling.
type Workspace interface {
	// HasPath reports whether rel exists under repoPath (file or directory).
	HasPath(repoPath, rel string) bool

	// WriteArtifact writes a submission artifact (e.g. __commit__.txt)
	// into the working copy root.
	WriteArtifact(repoPath, name, content string) error

	// ReadArtifact reads a submission artifact from the working copy root.
	ReadArtifact(repoPath, name string) (string, error)

	// RemoveWorkingCopy deletes the entire working copy tree.
	RemoveWorkingCopy(repoPath string) error
}
