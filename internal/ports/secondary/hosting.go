package secondary

import "context"

// PullRequest is the result of creating a pull request.
type PullRequest struct {
	Number int
	URL    string
}

// Hosting defines the secondary port for the code-hosting API. Issue and
// pull request creation are opaque calls; their failures surface as the
// adapter's APIError kind.
type Hosting interface {
	// CreateIssue files an issue on the upstream repository and returns
	// its number.
	CreateIssue(ctx context.Context, reponame, title, body string) (int, error)

	// CreatePullRequest opens a pull request from fromBranch to toBranch.
	CreatePullRequest(ctx context.Context, reponame, title, body, fromBranch, toBranch string) (*PullRequest, error)

	// CurrentUserLogin returns the login of the authenticated user.
	CurrentUserLogin(ctx context.Context) (string, error)
}
