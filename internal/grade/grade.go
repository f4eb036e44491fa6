// Package grade combines weighted metrics into a composite score and a letter
// grade. The weight vector is fixed and sums to 1; every input is normalized
// to [0,1] with "higher is worse" ratios inverted, so improving any good
// metric can never lower the grade.
package grade

import (
	"github.com/Umang00/Git-Roast-MCP/internal/analysis"
	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// Weight vector. Message quality and documentation dominate; schedule
// metrics matter less.
const (
	weightMessages    = 0.25
	weightDocs        = 0.25
	weightHealth      = 0.15
	weightStability   = 0.15
	weightRestfulness = 0.10
	weightBalance     = 0.10
)

// Score maps a snapshot to [0,100].
func Score(s domain.Snapshot) float64 {
	sum := weightMessages*(1-s.Commits.LazyRatio) +
		weightDocs*analysis.DocScore(s.Docs) +
		weightHealth*analysis.HealthScore(s.Repo) +
		weightStability*(1-s.Commits.FixRatio) +
		weightRestfulness*(1-s.Commits.LateNightRatio) +
		weightBalance*(1-s.Commits.WeekendRatio)
	return 100 * sum
}

// Letter maps a score to a grade via a fixed monotone threshold table.
func Letter(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 50:
		return "C"
	case score >= 25:
		return "D"
	default:
		return "F"
	}
}

var descriptions = map[string]string{
	"A": "Holy shit, you actually know what you're doing. This is rare. Suspiciously rare. Did you cheat?",
	"B": "Pretty good! Not perfect, but you're not actively making the world worse. Still got roasted though.",
	"C": "Mediocre. You're the developer equivalent of a participation trophy. Functional, but nobody's impressed.",
	"D": "Oof. Big oof. Your commits make senior devs cry. Do you need help? Serious question.",
	"F": "Genuinely catastrophic. Your git history violates the Geneva Convention. Please stop.",
}

// Describe returns the one-line verdict for a letter grade.
func Describe(letter string) string {
	if d, ok := descriptions[letter]; ok {
		return d
	}
	return "Unknown grade"
}
