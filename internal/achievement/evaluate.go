package achievement

import "github.com/Umang00/Git-Roast-MCP/internal/domain"

// Evaluate runs the catalog against a snapshot and returns the unlocked
// achievements in table order. Combined badges suppress the simpler badges
// they subsume via their supersede lists.
func Evaluate(s domain.Snapshot) []domain.Achievement {
	suppressed := make(map[string]bool)
	for _, e := range catalog {
		if len(e.supersede) > 0 && e.predicate(s) {
			for _, id := range e.supersede {
				suppressed[id] = true
			}
		}
	}

	var unlocked []domain.Achievement
	for _, e := range catalog {
		if suppressed[e.id] || !e.predicate(s) {
			continue
		}
		unlocked = append(unlocked, domain.Achievement{
			ID:          e.id,
			Emoji:       e.emoji,
			Title:       e.title,
			Severity:    e.severity,
			Description: e.describe(s),
		})
	}
	return unlocked
}

// Severity returns the catalog severity for an achievement id, or 0 when the
// id is unknown. Profile aggregation uses it to keep the highest-severity
// instance when deduplicating.
func Severity(id string) int {
	for _, e := range catalog {
		if e.id == id {
			return e.severity
		}
	}
	return 0
}
