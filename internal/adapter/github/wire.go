package github

import (
	"strings"
	"time"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// apiRepo mirrors the subset of the GitHub repository payload we use.
type apiRepo struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login string `json:"login"`
	} `json:"owner"`
	Description string `json:"description"`
	Language    string `json:"language"`
	License     *struct {
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
	Topics        []string  `json:"topics"`
	Stars         int       `json:"stargazers_count"`
	Forks         int       `json:"forks_count"`
	OpenIssues    int       `json:"open_issues_count"`
	Archived      bool      `json:"archived"`
	Fork          bool      `json:"fork"`
	DefaultBranch string    `json:"default_branch"`
	PushedAt      time.Time `json:"pushed_at"`
}

func (r apiRepo) toDomain() domain.RepoMetadata {
	meta := domain.RepoMetadata{
		Owner:         r.Owner.Login,
		Name:          r.Name,
		FullName:      r.FullName,
		Description:   r.Description,
		Language:      r.Language,
		Topics:        r.Topics,
		Stars:         r.Stars,
		Forks:         r.Forks,
		OpenIssues:    r.OpenIssues,
		Archived:      r.Archived,
		Fork:          r.Fork,
		DefaultBranch: r.DefaultBranch,
		PushedAt:      r.PushedAt,
	}
	if r.Owner.Login == "" && r.FullName != "" {
		if i := strings.IndexByte(r.FullName, '/'); i > 0 {
			meta.Owner = r.FullName[:i]
		}
	}
	// GitHub reports "NOASSERTION" for unrecognized licenses; that still
	// counts as licensed.
	if r.License != nil && r.License.SPDXID != "" {
		meta.License = r.License.SPDXID
	}
	return meta
}

// apiCommit mirrors the subset of the GitHub commit payload we use.
type apiCommit struct {
	Commit struct {
		Author struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
		Message string `json:"message"`
	} `json:"commit"`
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
}

// toDomain converts one commit payload. Commits without a timestamp carry no
// temporal signal and are skipped.
func (c apiCommit) toDomain() (domain.CommitRecord, bool) {
	if c.Commit.Author.Date.IsZero() {
		return domain.CommitRecord{}, false
	}
	author := c.Commit.Author.Name
	if author == "" && c.Author != nil {
		author = c.Author.Login
	}
	return domain.CommitRecord{
		Author:    author,
		Timestamp: c.Commit.Author.Date,
		Message:   c.Commit.Message,
	}, true
}
