// Package service orchestrates the analysis pipeline: fetch, measure, judge,
// narrate. All state lives on the stack of a single request.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Umang00/Git-Roast-MCP/internal/achievement"
	"github.com/Umang00/Git-Roast-MCP/internal/analysis"
	"github.com/Umang00/Git-Roast-MCP/internal/domain"
	"github.com/Umang00/Git-Roast-MCP/internal/grade"
	"github.com/Umang00/Git-Roast-MCP/internal/port"
	"github.com/Umang00/Git-Roast-MCP/internal/roast"
	"github.com/Umang00/Git-Roast-MCP/internal/worker"
)

// Limits bounds how much work one analysis run may do.
type Limits struct {
	// CommitCap is the per-repo history ceiling for single-repo analysis.
	CommitCap int
	// ProfileRepoLimit caps how many repositories a profile run inspects.
	ProfileRepoLimit int
	// ProfileCommitCap is the per-repo history ceiling inside a profile run.
	ProfileCommitCap int
	// Concurrency is the profile-mode worker count.
	Concurrency int
}

// DefaultLimits are the production defaults.
func DefaultLimits() Limits {
	return Limits{
		CommitCap:        1000,
		ProfileRepoLimit: 20,
		ProfileCommitCap: 100,
		Concurrency:      5,
	}
}

// RoastService runs repository and profile analyses.
type RoastService struct {
	source port.SourceClient
	gen    *roast.Generator
	limits Limits
}

// NewRoastService creates the analysis orchestrator.
func NewRoastService(source port.SourceClient, gen *roast.Generator, limits Limits) *RoastService {
	if limits.CommitCap <= 0 {
		limits.CommitCap = DefaultLimits().CommitCap
	}
	if limits.ProfileRepoLimit <= 0 {
		limits.ProfileRepoLimit = DefaultLimits().ProfileRepoLimit
	}
	if limits.ProfileCommitCap <= 0 {
		limits.ProfileCommitCap = DefaultLimits().ProfileCommitCap
	}
	if limits.Concurrency <= 0 {
		limits.Concurrency = DefaultLimits().Concurrency
	}
	return &RoastService{source: source, gen: gen, limits: limits}
}

// AnalyzeRepo runs the full pipeline for one repository.
func (s *RoastService) AnalyzeRepo(ctx context.Context, owner, repo string) (*domain.AnalysisResult, error) {
	slog.Info("analyzing repository", "owner", owner, "repo", repo)
	return s.analyzeRepo(ctx, owner, repo, s.limits.CommitCap, true)
}

// analyzeRepo fetches and measures one repository. narrate selects between a
// generative attempt and the deterministic template path.
func (s *RoastService) analyzeRepo(ctx context.Context, owner, repo string, commitCap int, narrate bool) (*domain.AnalysisResult, error) {
	meta, err := s.source.FetchRepository(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	commits, truncated, err := s.source.FetchCommits(ctx, owner, repo, commitCap)
	if err != nil {
		return nil, err
	}

	readme, present, err := s.source.FetchReadme(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	snap := domain.Snapshot{
		TargetID: meta.FullName,
		Repo:     *meta,
		Commits:  analysis.AnalyzeCommits(commits),
		Docs:     analysis.AnalyzeReadme(readme, present),
	}

	achievements := achievement.Evaluate(snap)
	score := grade.Score(snap)
	letter := grade.Letter(score)

	var outcome roast.Outcome
	if narrate {
		outcome = s.gen.Generate(ctx, snap, achievements, score, letter)
	} else {
		outcome = s.gen.FromTemplates(snap, achievements, score)
	}

	return &domain.AnalysisResult{
		Repo:             snap.Repo,
		Commits:          snap.Commits,
		Docs:             snap.Docs,
		Achievements:     achievements,
		Score:            score,
		Grade:            letter,
		GradeDescription: grade.Describe(letter),
		Roasts:           outcome.Passages,
		Suggestions:      outcome.Suggestions,
		CommitsTruncated: truncated,
		NarrativeSource:  outcome.Source,
	}, nil
}

// AnalyzeProfile analyzes up to ProfileRepoLimit of a user's non-fork
// repositories and folds the results into one summary. Individual repo
// failures are recorded, never fatal.
func (s *RoastService) AnalyzeProfile(ctx context.Context, username string) (*domain.ProfileSummary, error) {
	slog.Info("analyzing profile", "username", username)

	user, err := s.source.FetchUser(ctx, username)
	if err != nil {
		return nil, err
	}

	repos, err := s.source.ListUserRepos(ctx, username, s.limits.ProfileRepoLimit)
	if err != nil {
		return nil, err
	}

	results := worker.Run(ctx, repos, s.limits.Concurrency,
		func(ctx context.Context, repo domain.RepoMetadata) (*domain.AnalysisResult, error) {
			return s.analyzeRepo(ctx, repo.Owner, repo.Name, s.limits.ProfileCommitCap, false)
		})

	var (
		analyzed []domain.AnalysisResult
		failures []domain.RepoFailure
	)
	for _, r := range results {
		if r.Err != nil {
			slog.Warn("repo analysis failed during profile run",
				"repo", r.Repo.FullName, "error", r.Err)
			failures = append(failures, domain.RepoFailure{
				Repo:   r.Repo.FullName,
				Reason: failureReason(r.Err),
			})
			continue
		}
		analyzed = append(analyzed, *r.Report)
	}

	if len(analyzed) == 0 && len(failures) > 0 {
		return nil, port.Transient(
			fmt.Sprintf("none of %d repositories could be analyzed", len(failures)), nil)
	}

	folded := foldCommitMetrics(analyzed)
	score := foldScore(analyzed)
	letter := grade.Letter(score)
	achievements := foldAchievements(analyzed)

	snap := profileSnapshot(username, user, analyzed, folded)
	outcome := s.gen.Generate(ctx, snap, achievements, score, letter)

	return &domain.ProfileSummary{
		Username:         username,
		User:             *user,
		TotalRepos:       user.PublicRepos,
		ReposAnalyzed:    len(analyzed),
		Commits:          folded,
		Achievements:     achievements,
		Score:            score,
		Grade:            letter,
		GradeDescription: grade.Describe(letter),
		Roasts:           outcome.Passages,
		Suggestions:      outcome.Suggestions,
		Repos:            analyzed,
		PartialFailures:  failures,
		NarrativeSource:  outcome.Source,
	}, nil
}

// failureReason keeps structured messages and flattens everything else.
func failureReason(err error) string {
	var pe *port.Error
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

// foldCommitMetrics merges per-repo metrics by summing counts and recomputing
// every ratio from the folded totals.
func foldCommitMetrics(results []domain.AnalysisResult) domain.CommitMetrics {
	var m domain.CommitMetrics
	var msgLenTotal float64

	for _, r := range results {
		c := r.Commits
		m.TotalCommits += c.TotalCommits
		m.LateNightCount += c.LateNightCount
		m.WeekendCount += c.WeekendCount
		m.LazyCount += c.LazyCount
		m.FixCount += c.FixCount
		m.WipCount += c.WipCount
		m.MergeCount += c.MergeCount
		msgLenTotal += c.AvgMessageLen * float64(c.TotalCommits)

		if c.TotalCommits > 0 {
			if m.ShortestMessage == "" || len(c.ShortestMessage) < len(m.ShortestMessage) {
				m.ShortestMessage = c.ShortestMessage
			}
			if len(c.LongestMessage) > len(m.LongestMessage) {
				m.LongestMessage = c.LongestMessage
			}
		}
		// Author identities are not retained across repos, so the union is
		// unknowable here. The widest single-repo crew is the closest bound.
		if c.AuthorCount > m.AuthorCount {
			m.AuthorCount = c.AuthorCount
		}
		for i, n := range c.CommitsByHour {
			m.CommitsByHour[i] += n
		}
		for i, n := range c.CommitsByWeekday {
			m.CommitsByWeekday[i] += n
		}
	}

	if m.TotalCommits > 0 {
		total := float64(m.TotalCommits)
		m.LateNightRatio = float64(m.LateNightCount) / total
		m.WeekendRatio = float64(m.WeekendCount) / total
		m.LazyRatio = float64(m.LazyCount) / total
		m.FixRatio = float64(m.FixCount) / total
		m.WipRatio = float64(m.WipCount) / total
		m.AvgMessageLen = msgLenTotal / total
	}
	return m
}

// foldScore is the commit-count-weighted mean of per-repo scores. Doc and
// repo-health signals are already inside each per-repo score, so the fold
// carries them implicitly. Empty repos get weight 1 so they still drag.
func foldScore(results []domain.AnalysisResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum, weight float64
	for _, r := range results {
		w := float64(r.Commits.TotalCommits)
		if w < 1 {
			w = 1
		}
		sum += r.Score * w
		weight += w
	}
	return sum / weight
}

// foldAchievements unions per-repo achievements, keeping one instance per ID.
// Output preserves catalog order via the per-repo ordering of the first
// occurrence.
func foldAchievements(results []domain.AnalysisResult) []domain.Achievement {
	seen := make(map[string]int) // id -> index in out
	var out []domain.Achievement

	for _, r := range results {
		for _, a := range r.Achievements {
			if i, ok := seen[a.ID]; ok {
				if a.Severity > out[i].Severity {
					out[i] = a
				}
				continue
			}
			seen[a.ID] = len(out)
			out = append(out, a)
		}
	}
	return out
}

// profileSnapshot synthesizes a snapshot over the whole profile so the
// narrative layer can treat repo and profile targets uniformly.
func profileSnapshot(username string, user *domain.UserInfo, results []domain.AnalysisResult, folded domain.CommitMetrics) domain.Snapshot {
	repo := domain.RepoMetadata{
		Owner:    username,
		Name:     username,
		FullName: "profile/" + username,
	}
	if user != nil {
		repo.Description = user.Bio
	}

	var docs domain.DocMetrics
	for _, r := range results {
		repo.Stars += r.Repo.Stars
		repo.Forks += r.Repo.Forks
		repo.OpenIssues += r.Repo.OpenIssues
		if r.Docs.ReadmePresent {
			docs.ReadmePresent = true
			docs.Length += r.Docs.Length
			docs.WordCount += r.Docs.WordCount
			docs.HasCodeExample = docs.HasCodeExample || r.Docs.HasCodeExample
			docs.HasInstallSection = docs.HasInstallSection || r.Docs.HasInstallSection
			docs.HasUsageSection = docs.HasUsageSection || r.Docs.HasUsageSection
		}
	}

	return domain.Snapshot{
		TargetID: "profile/" + username,
		Repo:     repo,
		Commits:  folded,
		Docs:     docs,
	}
}
