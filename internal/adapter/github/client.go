// Package github implements port.SourceClient against the GitHub REST API.
// It owns authentication, Link-header pagination, and rate-limit/backoff
// handling; callers only ever see the structured error taxonomy.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
	"github.com/Umang00/Git-Roast-MCP/internal/port"
	"github.com/Umang00/Git-Roast-MCP/pkg/retry"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100 // max allowed by the GitHub API
	userAgent      = "git-roast/1.0"

	// DefaultCommitCap bounds how much history one run fetches.
	DefaultCommitCap = 1000
)

// Options configures the client.
type Options struct {
	// BaseURL overrides the API endpoint (tests). Empty means api.github.com.
	BaseURL string
	// Token is optional; its presence only raises the provider's rate-limit
	// ceiling. The client must work unauthenticated.
	Token string
	// MaxConcurrent bounds in-flight requests across all callers. This is the
	// shared rate-limit budget for profile-mode workers.
	MaxConcurrent int
	// Policy is the retry policy for rate-limit and transient faults.
	Policy retry.Policy
	// Timeout for a single HTTP request.
	Timeout time.Duration
}

// Client is a GitHub REST API source client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	sem        chan struct{}
	policy     retry.Policy
}

// NewClient creates a GitHub source client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 5
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Policy.MaxAttempts == 0 {
		opts.Policy = retry.DefaultPolicy()
	}
	// Retry rate limits and transient faults; a missing resource cannot
	// appear by retrying.
	opts.Policy.Retryable = func(err error) bool {
		switch port.KindOf(err) {
		case port.KindRateLimited, port.KindTransientFetch:
			return true
		default:
			return false
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		token:      opts.Token,
		httpClient: &http.Client{Timeout: opts.Timeout},
		sem:        make(chan struct{}, opts.MaxConcurrent),
		policy:     opts.Policy,
	}
}

// FetchRepository returns repository metadata.
func (c *Client) FetchRepository(ctx context.Context, owner, repo string) (*domain.RepoMetadata, error) {
	body, _, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo))
	if err != nil {
		return nil, err
	}

	var raw apiRepo
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, port.Transient("decode repository metadata", err)
	}
	meta := raw.toDomain()
	return &meta, nil
}

// FetchCommits pages through commit history up to cap commits. Truncation is
// reported as a flag, not an error.
func (c *Client) FetchCommits(ctx context.Context, owner, repo string, cap int) ([]domain.CommitRecord, bool, error) {
	if cap <= 0 {
		cap = DefaultCommitCap
	}

	var commits []domain.CommitRecord
	url := fmt.Sprintf("%s/repos/%s/%s/commits?per_page=%d", c.baseURL, owner, repo, perPage)

	for url != "" {
		body, header, err := c.get(ctx, url)
		if err != nil {
			return nil, false, err
		}

		var page []apiCommit
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, false, port.Transient("decode commit page", err)
		}

		for i, ac := range page {
			rec, ok := ac.toDomain()
			if !ok {
				continue // commit without a usable timestamp
			}
			commits = append(commits, rec)
			if len(commits) == cap {
				// History continues when this page has unconsumed items or
				// another page follows. An exactly-full final page with no
				// next link is not truncation.
				truncated := i < len(page)-1 || parseNextLink(header.Get("Link")) != ""
				return commits, truncated, nil
			}
		}

		url = parseNextLink(header.Get("Link"))
	}

	return commits, false, nil
}

// FetchReadme returns the decoded README text. An absent README is
// ("", false, nil), not an error.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string) (string, bool, error) {
	body, _, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo))
	if err != nil {
		if port.IsKind(err, port.KindNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	var raw struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", false, port.Transient("decode readme", err)
	}

	if raw.Encoding != "base64" {
		return raw.Content, true, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(raw.Content, "\n", ""))
	if err != nil {
		return "", false, port.Transient("decode readme content", err)
	}
	return string(decoded), true, nil
}

// FetchUser returns profile information for a user.
func (c *Client) FetchUser(ctx context.Context, username string) (*domain.UserInfo, error) {
	body, _, err := c.get(ctx, fmt.Sprintf("%s/users/%s", c.baseURL, username))
	if err != nil {
		return nil, err
	}

	var raw struct {
		Login       string `json:"login"`
		Name        string `json:"name"`
		Bio         string `json:"bio"`
		PublicRepos int    `json:"public_repos"`
		Followers   int    `json:"followers"`
		Following   int    `json:"following"`
		HTMLURL     string `json:"html_url"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, port.Transient("decode user", err)
	}

	return &domain.UserInfo{
		Login:       raw.Login,
		Name:        raw.Name,
		Bio:         raw.Bio,
		PublicRepos: raw.PublicRepos,
		Followers:   raw.Followers,
		Following:   raw.Following,
		ProfileURL:  raw.HTMLURL,
	}, nil
}

// ListUserRepos returns up to limit public non-fork repositories, most
// recently updated first.
func (c *Client) ListUserRepos(ctx context.Context, username string, limit int) ([]domain.RepoMetadata, error) {
	var repos []domain.RepoMetadata
	url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated&direction=desc", c.baseURL, username, perPage)

	for url != "" && len(repos) < limit {
		body, header, err := c.get(ctx, url)
		if err != nil {
			return nil, err
		}

		var page []apiRepo
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, port.Transient("decode repo list", err)
		}

		for _, r := range page {
			if r.Fork {
				continue
			}
			repos = append(repos, r.toDomain())
			if len(repos) == limit {
				return repos, nil
			}
		}

		url = parseNextLink(header.Get("Link"))
	}

	return repos, nil
}

// get performs one GET under the retry policy. The request semaphore is held
// only for the duration of a single HTTP request, never across retries.
func (c *Client) get(ctx context.Context, url string) ([]byte, http.Header, error) {
	var (
		body   []byte
		header http.Header
	)

	err := retry.Do(ctx, c.policy, func(ctx context.Context) error {
		b, h, err := c.getOnce(ctx, url)
		if err != nil {
			return err
		}
		body, header = b, h
		return nil
	})
	if err != nil {
		if port.KindOf(err) == "" {
			err = port.Transient(fmt.Sprintf("GET %s", url), err)
		}
		return nil, nil, err
	}
	return body, header, nil
}

func (c *Client) getOnce(ctx context.Context, url string) ([]byte, http.Header, error) {
	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
	defer func() { <-c.sem }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, port.Transient("create request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, port.Transient(fmt.Sprintf("GET %s", url), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil, port.NotFound("resource not found: %s", url)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, nil, rateLimitError(resp)
	case resp.StatusCode == http.StatusForbidden:
		// 403 is a rate limit only when the quota headers say so.
		if resp.Header.Get("X-RateLimit-Remaining") == "0" || resp.Header.Get("Retry-After") != "" {
			return nil, nil, rateLimitError(resp)
		}
		return nil, nil, port.Transient(fmt.Sprintf("GitHub API status 403 for %s", url), nil)
	case resp.StatusCode >= 500:
		return nil, nil, port.Transient(fmt.Sprintf("GitHub API status %d", resp.StatusCode), nil)
	default:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, port.Transient(fmt.Sprintf("GitHub API status %d: %s", resp.StatusCode, payload), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, port.Transient("read response body", err)
	}
	return body, resp.Header.Clone(), nil
}

// rateLimitError builds a RateLimited error carrying the provider's reset
// hint when it supplied one.
func rateLimitError(resp *http.Response) *port.Error {
	var retryAfter time.Duration

	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil {
			retryAfter = time.Duration(secs) * time.Second
		}
	}
	if retryAfter == 0 {
		if s := resp.Header.Get("X-RateLimit-Reset"); s != "" {
			if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
				if until := time.Until(time.Unix(unix, 0)); until > 0 {
					retryAfter = until
				}
			}
		}
	}

	return port.RateLimited("GitHub API rate limit exceeded", retryAfter)
}

// nextLinkRe matches <URL>; rel="next" in a Link header.
var nextLinkRe = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

func parseNextLink(linkHeader string) string {
	if m := nextLinkRe.FindStringSubmatch(linkHeader); len(m) >= 2 {
		return m[1]
	}
	return ""
}
