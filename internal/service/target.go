package service

import (
	"strings"

	"github.com/Umang00/Git-Roast-MCP/internal/port"
)

// TargetKind distinguishes the two analysis modes.
type TargetKind string

const (
	TargetRepo    TargetKind = "repo"
	TargetProfile TargetKind = "profile"
)

// Target is a resolved analysis target.
type Target struct {
	Kind     TargetKind
	Owner    string // repo targets only
	Repo     string // repo targets only
	Username string // profile targets only
}

// ParseTarget resolves free-form input into a repo or profile target. Accepted
// forms: a full github.com URL (with or without scheme, trailing .git, query,
// or fragment), an owner/repo pair, or a bare username. mode forces the
// interpretation when non-empty ("repo" or "profile").
func ParseTarget(input, mode string) (Target, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Target{}, port.InvalidInput("empty target")
	}

	cleaned := stripURLNoise(raw)

	var segments []string
	if i := hostIndex(cleaned); i >= 0 {
		rest := strings.Trim(cleaned[i:], "/")
		parts := strings.Split(rest, "/")
		segments = parts[1:] // drop the host itself
	} else {
		segments = strings.Split(strings.Trim(cleaned, "/"), "/")
	}

	// Drop empty segments left by doubled slashes.
	compact := segments[:0]
	for _, s := range segments {
		if s != "" {
			compact = append(compact, s)
		}
	}
	segments = compact

	switch mode {
	case "", "auto":
	case string(TargetRepo):
		if len(segments) < 2 {
			return Target{}, port.InvalidInput("repo mode requires owner/repo, got %q", input)
		}
	case string(TargetProfile):
		if len(segments) == 0 {
			return Target{}, port.InvalidInput("profile mode requires a username, got %q", input)
		}
		return validProfile(segments[0], input)
	default:
		return Target{}, port.InvalidInput("unknown mode %q", mode)
	}

	switch {
	case len(segments) >= 2:
		return validRepo(segments[0], segments[1], input)
	case len(segments) == 1:
		return validProfile(segments[0], input)
	default:
		return Target{}, port.InvalidInput("cannot parse target %q", input)
	}
}

func validRepo(owner, repo, input string) (Target, error) {
	repo = strings.TrimSuffix(repo, ".git")
	if !validName(owner) || !validName(repo) {
		return Target{}, port.InvalidInput("invalid repository reference %q", input)
	}
	return Target{Kind: TargetRepo, Owner: owner, Repo: repo}, nil
}

func validProfile(username, input string) (Target, error) {
	if !validName(username) {
		return Target{}, port.InvalidInput("invalid username %q", input)
	}
	return Target{Kind: TargetProfile, Username: username}, nil
}

// stripURLNoise removes scheme, query, and fragment from a target string.
func stripURLNoise(s string) string {
	for _, prefix := range []string{"https://", "http://", "git@"} {
		s = strings.TrimPrefix(s, prefix)
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	// SSH form github.com:owner/repo
	s = strings.Replace(s, "github.com:", "github.com/", 1)
	return s
}

func hostIndex(s string) int {
	if i := strings.Index(s, "github.com/"); i >= 0 {
		return i
	}
	// A bare host with nothing after it is still host-form, not a username.
	if strings.HasSuffix(s, "github.com") {
		return strings.Index(s, "github.com")
	}
	return -1
}

// validName accepts the characters GitHub allows in usernames and repo names.
func validName(s string) bool {
	if s == "" || len(s) > 100 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
