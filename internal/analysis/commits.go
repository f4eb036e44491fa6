// Package analysis holds the pure metric computations: commit timing and
// message statistics, README completeness, and repository health. Everything
// here is a function over in-memory values; no network, no clock, no state.
package analysis

import (
	"strings"
	"time"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// Late-night window: hour in [23:00, 05:00). Hours and weekdays are evaluated
// in UTC, matching the provider's commit timestamps.
const (
	lateNightStart = 23
	lateNightEnd   = 5
)

// lazyKeywords are messages carrying no information on their own.
var lazyKeywords = map[string]struct{}{
	"fix":    {},
	"wip":    {},
	"asdf":   {},
	"update": {},
	"typo":   {},
	"stuff":  {},
	"test":   {},
	".":      {},
}

const lazyMinLength = 4

// AnalyzeCommits derives CommitMetrics from a commit list. An empty list
// yields all-zero metrics, not an error: a repository with no analyzable
// commits is a valid, low-information input.
func AnalyzeCommits(commits []domain.CommitRecord) domain.CommitMetrics {
	var m domain.CommitMetrics
	m.TotalCommits = len(commits)
	if len(commits) == 0 {
		return m
	}

	authors := make(map[string]struct{})
	var totalLen int

	for i, c := range commits {
		msg := firstLine(c.Message)
		ts := c.Timestamp.UTC()
		hour := ts.Hour()
		weekday := ts.Weekday()

		authors[c.Author] = struct{}{}
		m.CommitsByHour[hour]++
		m.CommitsByWeekday[int(weekday)]++

		if hour >= lateNightStart || hour < lateNightEnd {
			m.LateNightCount++
		}
		if weekday == time.Saturday || weekday == time.Sunday {
			m.WeekendCount++
		}
		if isLazyMessage(msg) {
			m.LazyCount++
		}

		lower := strings.ToLower(msg)
		if strings.Contains(lower, "fix") {
			m.FixCount++
		}
		if strings.Contains(lower, "wip") || strings.Contains(lower, "work in progress") || strings.Contains(lower, "todo") {
			m.WipCount++
		}
		if strings.Contains(lower, "merge") {
			m.MergeCount++
		}

		totalLen += len(msg)
		if i == 0 || len(msg) < len(m.ShortestMessage) {
			m.ShortestMessage = msg
		}
		if i == 0 || len(msg) > len(m.LongestMessage) {
			m.LongestMessage = msg
		}
	}

	n := float64(m.TotalCommits)
	m.LateNightRatio = float64(m.LateNightCount) / n
	m.WeekendRatio = float64(m.WeekendCount) / n
	m.LazyRatio = float64(m.LazyCount) / n
	m.FixRatio = float64(m.FixCount) / n
	m.WipRatio = float64(m.WipCount) / n
	m.AvgMessageLen = float64(totalLen) / n
	m.AuthorCount = len(authors)

	return m
}

// isLazyMessage reports whether a message matches the low-information
// keyword/length heuristic.
func isLazyMessage(msg string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(msg))
	if len(trimmed) < lazyMinLength {
		return true
	}
	_, ok := lazyKeywords[trimmed]
	return ok
}

// firstLine returns the subject line of a commit message.
func firstLine(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
