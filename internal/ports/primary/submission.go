package primary

// SubmitService drives fixes through a submission path. Submission is
// asynchronous: EnqueueSubmit only queues the work; the engine worker
// executes it and chains the terminal and cleanup tasks.
type SubmitService interface {
	// EnqueueSubmit queues a submit task for the repository's pending fixes.
	EnqueueSubmit(reponame string) error
}
