package domain

// Snapshot is the combined metric set one analysis run produces: commit
// statistics, documentation signals, and repository metadata. Achievement
// evaluation, grading, and narration are all pure functions of a Snapshot.
type Snapshot struct {
	// TargetID identifies the analysis target ("owner/repo" or a username).
	// It seeds deterministic template selection; it never affects metrics.
	TargetID string

	Repo    RepoMetadata
	Commits CommitMetrics
	Docs    DocMetrics
}
