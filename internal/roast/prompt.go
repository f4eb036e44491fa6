package roast

import (
	"encoding/json"
	"fmt"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

const systemPrompt = `You are GitRoast, the most brutal, savage, and merciless code roaster on the internet. You combine Gordon Ramsay, a stand-up comedian, and the meanest code reviewer who ever lived. Your roasts make developers laugh while destroying their ego, use creative metaphors and wordplay, and reference EXACT stats like a detective catching a criminal. Respond ONLY with valid JSON.`

// distilled is the stat payload embedded in the user prompt: enough context
// for specific roasts without shipping the full commit list.
type distilled struct {
	Target           string               `json:"target"`
	TotalCommits     int                  `json:"total_commits"`
	LateNightCommits int                  `json:"late_night_commits"`
	LateNightPct     int                  `json:"late_night_percentage"`
	WeekendCommits   int                  `json:"weekend_commits"`
	WeekendPct       int                  `json:"weekend_percentage"`
	LazyMessages     int                  `json:"lazy_messages"`
	FixCommits       int                  `json:"fix_commits"`
	WipCommits       int                  `json:"wip_commits"`
	AvgMessageLen    float64              `json:"average_message_length"`
	ShortestMessage  string               `json:"shortest_message"`
	AuthorCount      int                  `json:"author_count"`
	PeakActivity     string               `json:"peak_activity,omitempty"`
	Language         string               `json:"language"`
	Stars            int                  `json:"stars"`
	Archived         bool                 `json:"archived"`
	Readme           domain.DocMetrics    `json:"readme"`
	Achievements     []domain.Achievement `json:"achievements"`
	Score            float64              `json:"score"`
	Grade            string               `json:"grade"`
}

func buildPrompt(s domain.Snapshot, achievements []domain.Achievement, score float64, letter string) (system, user string, err error) {
	d := distilled{
		Target:           s.TargetID,
		TotalCommits:     s.Commits.TotalCommits,
		LateNightCommits: s.Commits.LateNightCount,
		LateNightPct:     pct(s.Commits.LateNightRatio),
		WeekendCommits:   s.Commits.WeekendCount,
		WeekendPct:       pct(s.Commits.WeekendRatio),
		LazyMessages:     s.Commits.LazyCount,
		FixCommits:       s.Commits.FixCount,
		WipCommits:       s.Commits.WipCount,
		AvgMessageLen:    s.Commits.AvgMessageLen,
		ShortestMessage:  s.Commits.ShortestMessage,
		AuthorCount:      s.Commits.AuthorCount,
		Language:         s.Repo.Language,
		Stars:            s.Repo.Stars,
		Archived:         s.Repo.Archived,
		Readme:           s.Docs,
		Achievements:     achievements,
		Score:            score,
		Grade:            letter,
	}
	if hour, day, ok := peakActivity(s.Commits); ok {
		d.PeakActivity = fmt.Sprintf("%s on %s", formatHour(hour), weekdayNames[day])
	}

	stats, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", "", err
	}

	user = fmt.Sprintf(`ANALYSIS TARGET: %s

GITHUB ANALYSIS DATA:
%s

Generate a savage roast report as JSON with this structure:
{
  "roasts": [
    {"emoji": "🔥", "title": "Savage category title", "content": "Brutal multi-sentence roast referencing SPECIFIC stats from the data.", "severity": 1-5}
  ],
  "suggestions": [
    "Brutally sarcastic suggestion that's actually useful"
  ]
}

Rules:
- Generate 6 to 10 roasts covering commit habits, message quality, README, metadata, and work-life balance.
- Every roast MUST reference specific numbers from the data above. No generic filler.
- Be hilariously mean. Dark humor, sarcasm, roasts that sting but land.
- RESPOND ONLY WITH VALID JSON. No markdown fences, no explanations. Start with { and end with }.`, s.TargetID, stats)

	return systemPrompt, user, nil
}
