package domain

import "time"

// CommitRecord is a single commit as fetched from the hosting provider.
// Immutable once fetched; owned by the analysis run that fetched it.
type CommitRecord struct {
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"` // UTC
	Message   string    `json:"message"`
}

// CommitMetrics holds derived statistics over a commit list. Recomputed on
// every run; never cached. All ratio fields lie in [0,1].
type CommitMetrics struct {
	TotalCommits    int     `json:"total_commits"`
	LateNightCount  int     `json:"late_night_commits"`
	LateNightRatio  float64 `json:"late_night_ratio"`
	WeekendCount    int     `json:"weekend_commits"`
	WeekendRatio    float64 `json:"weekend_ratio"`
	LazyCount       int     `json:"lazy_messages"`
	LazyRatio       float64 `json:"lazy_message_ratio"`
	FixCount        int     `json:"fix_commits"`
	FixRatio        float64 `json:"fix_ratio"`
	WipCount        int     `json:"wip_commits"`
	WipRatio        float64 `json:"wip_ratio"`
	MergeCount      int     `json:"merge_commits"`
	AvgMessageLen   float64 `json:"average_message_length"`
	ShortestMessage string  `json:"shortest_message"`
	LongestMessage  string  `json:"longest_message"`
	AuthorCount     int     `json:"author_count"`

	// Activity histograms, UTC buckets.
	CommitsByHour    [24]int `json:"commits_by_hour"`
	CommitsByWeekday [7]int  `json:"commits_by_weekday"` // 0 = Sunday
}
