package domain

// Achievement is a badge unlocked when a metrics snapshot satisfies its
// predicate. Instances are created per run; no unlock state persists.
type Achievement struct {
	ID          string `json:"id"`
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Severity    int    `json:"severity"` // 1 (mild) .. 5 (brutal)
	Description string `json:"description"`
}

// RoastPassage is one unit of critique text, either model-generated or
// template-selected.
type RoastPassage struct {
	Emoji    string `json:"emoji"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Severity int    `json:"severity"` // 1 .. 5
}

// Narrative source values.
const (
	NarrativeGenerated = "generated"
	NarrativeTemplate  = "template"
)

// AnalysisResult is the unit returned for a single repository. It is a pure
// value, fully reconstructible from the fetched snapshot.
type AnalysisResult struct {
	Repo             RepoMetadata   `json:"repository"`
	Commits          CommitMetrics  `json:"commit_metrics"`
	Docs             DocMetrics     `json:"doc_metrics"`
	Achievements     []Achievement  `json:"achievements"`
	Score            float64        `json:"score"` // 0..100
	Grade            string         `json:"grade"`
	GradeDescription string         `json:"grade_description"`
	Roasts           []RoastPassage `json:"roasts"`
	Suggestions      []string       `json:"suggestions"`
	CommitsTruncated bool           `json:"commits_truncated"`
	NarrativeSource  string         `json:"narrative_source"`
}

// RepoFailure records a repository that could not be analyzed during profile
// aggregation.
type RepoFailure struct {
	Repo   string `json:"repo"`
	Reason string `json:"reason"`
}

// ProfileSummary aggregates analysis results across a user's repositories.
type ProfileSummary struct {
	Username         string           `json:"username"`
	User             UserInfo         `json:"user"`
	TotalRepos       int              `json:"total_repos"`
	ReposAnalyzed    int              `json:"repos_analyzed"`
	Commits          CommitMetrics    `json:"commit_metrics"`
	Achievements     []Achievement    `json:"achievements"`
	Score            float64          `json:"score"`
	Grade            string           `json:"grade"`
	GradeDescription string           `json:"grade_description"`
	Roasts           []RoastPassage   `json:"roasts"`
	Suggestions      []string         `json:"suggestions"`
	Repos            []AnalysisResult `json:"repos"`
	PartialFailures  []RepoFailure    `json:"partial_failures"`
	NarrativeSource  string           `json:"narrative_source"`
}
