package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
	"github.com/Umang00/Git-Roast-MCP/internal/port"
	"github.com/Umang00/Git-Roast-MCP/internal/roast"
	"github.com/Umang00/Git-Roast-MCP/internal/service"
)

// stubSource returns canned provider responses keyed by repo name.
type stubSource struct {
	err error
}

func (s *stubSource) FetchRepository(ctx context.Context, owner, repo string) (*domain.RepoMetadata, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.RepoMetadata{
		Owner: owner, Name: repo, FullName: owner + "/" + repo,
		Description: "a project", License: "MIT", Topics: []string{"go"}, Stars: 1,
	}, nil
}

func (s *stubSource) FetchCommits(ctx context.Context, owner, repo string, cap int) ([]domain.CommitRecord, bool, error) {
	return []domain.CommitRecord{{
		Author:    "dev",
		Timestamp: time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC),
		Message:   "add the good stuff with a proper message",
	}}, false, nil
}

func (s *stubSource) FetchReadme(ctx context.Context, owner, repo string) (string, bool, error) {
	return "", false, nil
}

func (s *stubSource) FetchUser(ctx context.Context, username string) (*domain.UserInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.UserInfo{Login: username}, nil
}

func (s *stubSource) ListUserRepos(ctx context.Context, username string, limit int) ([]domain.RepoMetadata, error) {
	return nil, nil
}

func newTestApp(src port.SourceClient) *fiber.App {
	gen := roast.NewGenerator(nil, time.Second)
	svc := service.NewRoastService(src, gen, service.DefaultLimits())

	app := fiber.New()
	NewRoastHandler(svc).Register(app.Group("/api/v1"))
	return app
}

func postRoast(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/roast", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRoastRepoSuccess(t *testing.T) {
	app := newTestApp(&stubSource{})

	resp := postRoast(t, app, `{"target": "octocat/hello"}`)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result domain.AnalysisResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "octocat/hello", result.Repo.FullName)
	assert.NotEmpty(t, result.Grade)
	assert.NotEmpty(t, result.Roasts)
}

func TestRoastInvalidTarget(t *testing.T) {
	app := newTestApp(&stubSource{})

	resp := postRoast(t, app, `{"target": ""}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postRoast(t, app, `{"target": "octo cat"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRoastNotFoundMapsTo404(t *testing.T) {
	app := newTestApp(&stubSource{err: port.NotFound("repository missing")})

	resp := postRoast(t, app, `{"target": "octocat/gone"}`)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRoastRateLimitedMapsTo429WithRetryAfter(t *testing.T) {
	app := newTestApp(&stubSource{err: port.RateLimited("rate limit exceeded", 90*time.Second)})

	resp := postRoast(t, app, `{"target": "octocat/hello"}`)

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "90", resp.Header.Get("Retry-After"))
}

func TestRoastTransientMapsTo502(t *testing.T) {
	app := newTestApp(&stubSource{err: port.Transient("provider down", nil)})

	resp := postRoast(t, app, `{"target": "octocat/hello"}`)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&stubSource{})

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
