package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

func perfectSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Repo: domain.RepoMetadata{
			Description: "a project",
			License:     "Apache-2.0",
			Topics:      []string{"go"},
		},
		Commits: domain.CommitMetrics{TotalCommits: 100},
		Docs: domain.DocMetrics{
			ReadmePresent:     true,
			Length:            1500,
			HasCodeExample:    true,
			HasInstallSection: true,
		},
	}
}

func TestScorePerfectSnapshot(t *testing.T) {
	assert.InDelta(t, 100.0, Score(perfectSnapshot()), 1e-9)
}

func TestScoreWorstSnapshot(t *testing.T) {
	s := domain.Snapshot{
		Repo: domain.RepoMetadata{Archived: true},
		Commits: domain.CommitMetrics{
			TotalCommits:   100,
			LazyRatio:      1,
			FixRatio:       1,
			LateNightRatio: 1,
			WeekendRatio:   1,
		},
	}
	assert.InDelta(t, 0.0, Score(s), 1e-9)
}

func TestScoreBounded(t *testing.T) {
	s := perfectSnapshot()
	s.Commits.LazyRatio = 0.5
	s.Commits.FixRatio = 0.3

	got := Score(s)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestScoreMonotoneInLazyRatio(t *testing.T) {
	s := perfectSnapshot()
	prev := Score(s)
	for _, r := range []float64{0.2, 0.5, 0.8, 1.0} {
		s.Commits.LazyRatio = r
		got := Score(s)
		assert.Less(t, got, prev, "lazy ratio %v", r)
		prev = got
	}
}

func TestScoreWeights(t *testing.T) {
	// Dropping documentation alone costs exactly the docs weight.
	s := perfectSnapshot()
	s.Docs = domain.DocMetrics{}
	assert.InDelta(t, 75.0, Score(s), 1e-9)
}

func TestLetterThresholds(t *testing.T) {
	cases := []struct {
		score  float64
		letter string
	}{
		{100, "A"},
		{90, "A"},
		{89.99, "B"},
		{75, "B"},
		{74.99, "C"},
		{50, "C"},
		{49.99, "D"},
		{25, "D"},
		{24.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.letter, Letter(tc.score), "score %v", tc.score)
	}
}

func TestDescribeCoversAllLetters(t *testing.T) {
	for _, l := range []string{"A", "B", "C", "D", "F"} {
		assert.NotEqual(t, "Unknown grade", Describe(l))
	}
	assert.Equal(t, "Unknown grade", Describe("E"))
}
