package analysis

import (
	"regexp"
	"strings"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// readmeFloor is the minimum README length that earns any documentation
// points; anything shorter scores the same as no README at all.
const readmeFloor = 200

var (
	installHeading = regexp.MustCompile(`(?im)^#{1,6}\s*(install|installation|getting started|setup)`)
	usageHeading   = regexp.MustCompile(`(?im)^#{1,6}\s*(usage|how to use|examples)`)
)

// AnalyzeReadme derives DocMetrics from README content. present is false when
// the provider reported no README.
func AnalyzeReadme(content string, present bool) domain.DocMetrics {
	if !present {
		return domain.DocMetrics{}
	}
	return domain.DocMetrics{
		ReadmePresent:     true,
		Length:            len(content),
		WordCount:         len(strings.Fields(content)),
		HasCodeExample:    strings.Contains(content, "```"),
		HasInstallSection: installHeading.MatchString(content),
		HasUsageSection:   usageHeading.MatchString(content),
	}
}

// DocScore maps DocMetrics to [0,1]. A README below the length floor (or
// absent) scores zero; a fenced code block and an install heading each add a
// fixed contribution.
func DocScore(d domain.DocMetrics) float64 {
	if !d.ReadmePresent || d.Length < readmeFloor {
		return 0
	}
	score := 0.5
	if d.HasCodeExample {
		score += 0.25
	}
	if d.HasInstallSection {
		score += 0.25
	}
	return score
}

// HealthScore maps repository metadata to [0,1] with fixed weights. The
// archived flag forfeits the largest weight.
func HealthScore(r domain.RepoMetadata) float64 {
	var score float64
	if strings.TrimSpace(r.Description) != "" {
		score += 0.30
	}
	if r.License != "" {
		score += 0.25
	}
	if len(r.Topics) > 0 {
		score += 0.15
	}
	if !r.Archived {
		score += 0.30
	}
	return score
}
