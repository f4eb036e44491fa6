// Package roast turns a metrics snapshot and its unlocked achievements into
// ordered critique passages. Two paths: one bounded attempt against the
// generative backend, then a deterministic template fallback. The choice is
// visible in the Outcome, not hidden in control flow.
package roast

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
	"github.com/Umang00/Git-Roast-MCP/internal/port"
)

const (
	maxPassages    = 10
	goodScoreFloor = 75.0

	defaultTimeout = 20 * time.Second
)

// Outcome is the explicit two-state result of narrative generation.
type Outcome struct {
	Passages       []domain.RoastPassage
	Suggestions    []string
	Source         string // domain.NarrativeGenerated | domain.NarrativeTemplate
	FallbackReason string // set only when a generative attempt failed
}

// Generator produces roast narratives. A nil AI provider means template-only
// operation; absence of a backend degrades, never fails.
type Generator struct {
	ai      port.AIProvider
	timeout time.Duration
}

// NewGenerator creates a narrative generator. ai may be nil.
func NewGenerator(ai port.AIProvider, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Generator{ai: ai, timeout: timeout}
}

// Generate returns a narrative for the snapshot. The generative backend gets
// at most one attempt per analysis; any failure (timeout, malformed response,
// quota error) falls through to templates and is never surfaced as an error.
func (g *Generator) Generate(ctx context.Context, s domain.Snapshot, achievements []domain.Achievement, score float64, letter string) Outcome {
	if g.ai == nil {
		return g.fromTemplates(s, achievements, score, "")
	}

	out, err := g.generateOnce(ctx, s, achievements, score, letter)
	if err != nil {
		genErr := port.GenerationFailed("generative narration failed", err)
		slog.Warn("falling back to template narration", "target", s.TargetID, "error", genErr)
		return g.fromTemplates(s, achievements, score, genErr.Message)
	}
	return out
}

// FromTemplates skips the generative backend entirely. Used for per-repo
// narratives inside a profile run, where only the folded summary earns a
// backend call.
func (g *Generator) FromTemplates(s domain.Snapshot, achievements []domain.Achievement, score float64) Outcome {
	return g.fromTemplates(s, achievements, score, "")
}

// aiResponse is the JSON shape the backend is instructed to return. Grade
// and achievements in the response are ignored: those are computed
// deterministically upstream.
type aiResponse struct {
	Roasts      []domain.RoastPassage `json:"roasts"`
	Suggestions []string              `json:"suggestions"`
}

func (g *Generator) generateOnce(ctx context.Context, s domain.Snapshot, achievements []domain.Achievement, score float64, letter string) (Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	system, user, err := buildPrompt(s, achievements, score, letter)
	if err != nil {
		return Outcome{}, err
	}

	text, err := g.ai.Chat(ctx, system, user)
	if err != nil {
		return Outcome{}, err
	}

	resp, err := parseResponse(text)
	if err != nil {
		return Outcome{}, err
	}

	passages := resp.Roasts
	for i := range passages {
		if passages[i].Severity < 1 {
			passages[i].Severity = 1
		}
		if passages[i].Severity > 5 {
			passages[i].Severity = 5
		}
	}
	sort.SliceStable(passages, func(i, j int) bool {
		return passages[i].Severity > passages[j].Severity
	})
	if len(passages) > maxPassages {
		passages = passages[:maxPassages]
	}

	return Outcome{
		Passages:    passages,
		Suggestions: resp.Suggestions,
		Source:      domain.NarrativeGenerated,
	}, nil
}

// parseResponse decodes the backend's JSON, tolerating a markdown code fence
// around the payload. A response without passages is malformed.
func parseResponse(text string) (*aiResponse, error) {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "json")
		if end := strings.Index(cleaned, "```"); end >= 0 {
			cleaned = cleaned[:end]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	var resp aiResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, err
	}
	if len(resp.Roasts) == 0 {
		return nil, port.GenerationFailed("response missing roast passages", nil)
	}
	return &resp, nil
}
