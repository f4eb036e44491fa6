package port

import (
	"context"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// SourceClient abstracts the hosting provider's read-only API. Implementations
// own authentication, pagination, and rate-limit/backoff handling; callers see
// only the structured error taxonomy.
type SourceClient interface {
	// FetchRepository returns repository metadata. A nonexistent repository
	// yields a KindNotFound error immediately, without retries.
	FetchRepository(ctx context.Context, owner, repo string) (*domain.RepoMetadata, error)

	// FetchCommits pages through the commit history up to cap commits.
	// truncated reports that history continued past the cap; it is not an
	// error.
	FetchCommits(ctx context.Context, owner, repo string, cap int) (commits []domain.CommitRecord, truncated bool, err error)

	// FetchReadme returns the decoded README text. An absent README yields
	// ("", false, nil) rather than an error.
	FetchReadme(ctx context.Context, owner, repo string) (content string, present bool, err error)

	// FetchUser returns profile information for a user.
	FetchUser(ctx context.Context, username string) (*domain.UserInfo, error)

	// ListUserRepos returns up to limit of the user's public, non-fork
	// repositories, most recently updated first.
	ListUserRepos(ctx context.Context, username string, limit int) ([]domain.RepoMetadata, error)
}
