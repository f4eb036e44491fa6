package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umang00/Git-Roast-MCP/internal/port"
)

func TestParseTargetRepoForms(t *testing.T) {
	cases := []struct {
		input string
		owner string
		repo  string
	}{
		{"https://github.com/octocat/hello", "octocat", "hello"},
		{"http://github.com/octocat/hello", "octocat", "hello"},
		{"github.com/octocat/hello", "octocat", "hello"},
		{"https://github.com/octocat/hello.git", "octocat", "hello"},
		{"https://github.com/octocat/hello?tab=readme", "octocat", "hello"},
		{"https://github.com/octocat/hello#section", "octocat", "hello"},
		{"https://github.com/octocat/hello/tree/main/pkg", "octocat", "hello"},
		{"git@github.com:octocat/hello.git", "octocat", "hello"},
		{"octocat/hello", "octocat", "hello"},
	}
	for _, tc := range cases {
		got, err := ParseTarget(tc.input, "")
		require.NoError(t, err, tc.input)
		assert.Equal(t, TargetRepo, got.Kind, tc.input)
		assert.Equal(t, tc.owner, got.Owner, tc.input)
		assert.Equal(t, tc.repo, got.Repo, tc.input)
	}
}

func TestParseTargetProfileForms(t *testing.T) {
	cases := []string{
		"https://github.com/octocat",
		"github.com/octocat",
		"octocat",
	}
	for _, input := range cases {
		got, err := ParseTarget(input, "")
		require.NoError(t, err, input)
		assert.Equal(t, TargetProfile, got.Kind, input)
		assert.Equal(t, "octocat", got.Username, input)
	}
}

func TestParseTargetModeOverride(t *testing.T) {
	// Profile mode keeps only the leading segment.
	got, err := ParseTarget("https://github.com/octocat/hello", "profile")
	require.NoError(t, err)
	assert.Equal(t, TargetProfile, got.Kind)
	assert.Equal(t, "octocat", got.Username)

	// Repo mode demands two segments.
	_, err = ParseTarget("octocat", "repo")
	require.Error(t, err)
	assert.True(t, port.IsKind(err, port.KindInvalidInput))
}

func TestParseTargetInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"github.com",
		"https://github.com/",
		"octo cat",
		"owner/re po",
	}
	for _, input := range cases {
		_, err := ParseTarget(input, "")
		require.Error(t, err, "input %q", input)
		assert.True(t, port.IsKind(err, port.KindInvalidInput), "input %q", input)
	}

	_, err := ParseTarget("octocat/hello", "sideways")
	require.Error(t, err)
	assert.True(t, port.IsKind(err, port.KindInvalidInput))
}
