// Package achievement evaluates a static, ordered badge catalog against a
// metrics snapshot. Evaluation is a pure function: identical snapshots always
// unlock the identical achievement set, order included.
package achievement

import (
	"fmt"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// Badge identifiers.
const (
	IDWeekendNocturne = "weekend_nocturne"
	IDNocturnal       = "nocturnal"
	IDWeekendWarrior  = "weekend_warrior"
	IDLazyMessages    = "lazy_messages"
	IDBugFactory      = "bug_factory"
	IDNeverFinishes   = "never_finishes"
	IDReadmeMissing   = "readme_missing"
	IDReadmeSkeleton  = "readme_skeleton"
	IDSoloAct         = "solo_act"
	IDZeroStars       = "zero_stars"
	IDTombstone       = "tombstone"
	IDUnlicensed      = "unlicensed"
	IDUndiscoverable  = "undiscoverable"
	IDCommitInflation = "commit_inflation"
	IDFreshMeat       = "fresh_meat"
)

// Unlock thresholds.
const (
	lateNightThreshold = 0.3
	weekendThreshold   = 0.5
	lazyThreshold      = 0.3
	fixThreshold       = 0.2
	wipThreshold       = 0.15
)

// entry is one row of the catalog: a predicate, the badge it unlocks, and the
// simpler badges it suppresses when it fires. Suppression is part of the
// table, not ad hoc logic.
type entry struct {
	id        string
	emoji     string
	title     string
	severity  int
	describe  func(s domain.Snapshot) string
	predicate func(s domain.Snapshot) bool
	supersede []string
}

// catalog is the full achievement table, evaluated in order.
var catalog = []entry{
	{
		id:       IDWeekendNocturne,
		emoji:    "🧛",
		title:    "Weekend Nocturne",
		severity: 5,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d late-night commits and %d weekend commits. Daylight and weekdays are equally foreign concepts to you.",
				s.Commits.LateNightCount, s.Commits.WeekendCount)
		},
		predicate: func(s domain.Snapshot) bool {
			return s.Commits.LateNightRatio > lateNightThreshold && s.Commits.WeekendRatio > weekendThreshold
		},
		supersede: []string{IDNocturnal, IDWeekendWarrior},
	},
	{
		id:       IDNocturnal,
		emoji:    "🌙",
		title:    "Vampire Code Goblin",
		severity: 4,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits made while the rest of humanity sleeps. Sunlight is your mortal enemy.", s.Commits.LateNightCount)
		},
		predicate: func(s domain.Snapshot) bool { return s.Commits.LateNightRatio > lateNightThreshold },
	},
	{
		id:       IDWeekendWarrior,
		emoji:    "⛓️",
		title:    "Stockholm Syndrome: Developer Edition",
		severity: 4,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d weekend commits. You've been held hostage by your IDE so long you forgot what freedom tastes like.", s.Commits.WeekendCount)
		},
		predicate: func(s domain.Snapshot) bool { return s.Commits.WeekendRatio > weekendThreshold },
	},
	{
		id:       IDLazyMessages,
		emoji:    "💩",
		title:    "Commit Message War Criminal",
		severity: 4,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits with messages like \"fix\", \"wip\", \"asdf\". Future readers will need an archaeologist.", s.Commits.LazyCount)
		},
		predicate: func(s domain.Snapshot) bool { return s.Commits.LazyRatio > lazyThreshold },
	},
	{
		id:       IDBugFactory,
		emoji:    "🐛",
		title:    "Professional Chaos Agent",
		severity: 4,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d fix commits. You create more problems than you solve, which is impressive in the worst way possible.", s.Commits.FixCount)
		},
		predicate: func(s domain.Snapshot) bool { return s.Commits.FixRatio > fixThreshold },
	},
	{
		id:       IDNeverFinishes,
		emoji:    "🚧",
		title:    "The Commitment-Phobe",
		severity: 3,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d WIP/TODO commits. Every repo is a museum of half-baked ideas.", s.Commits.WipCount)
		},
		predicate: func(s domain.Snapshot) bool { return s.Commits.WipRatio > wipThreshold },
	},
	{
		id:       IDReadmeMissing,
		emoji:    "📄",
		title:    "README: 404 Not Found",
		severity: 4,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits and not one README. A restaurant with no menu.", s.Commits.TotalCommits)
		},
		predicate: func(s domain.Snapshot) bool { return !s.Docs.ReadmePresent },
	},
	{
		id:       IDReadmeSkeleton,
		emoji:    "📝",
		title:    "README: Technically Exists",
		severity: 3,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("A %d-character README. That's not documentation, that's a Post-it note.", s.Docs.Length)
		},
		predicate: func(s domain.Snapshot) bool { return s.Docs.ReadmePresent && s.Docs.Length < 200 },
	},
	{
		id:       IDSoloAct,
		emoji:    "🏝️",
		title:    "Solo Dev Island",
		severity: 3,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("One contributor, %d commits. Bus factor of one, and the bus is circling.", s.Commits.TotalCommits)
		},
		predicate: func(s domain.Snapshot) bool {
			return s.Commits.AuthorCount == 1 && s.Commits.TotalCommits > 50
		},
	},
	{
		id:       IDZeroStars,
		emoji:    "⭐",
		title:    "Universally Ignored",
		severity: 2,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits, 0 stars. Not even your mom starred this.", s.Commits.TotalCommits)
		},
		predicate: func(s domain.Snapshot) bool {
			return s.Repo.Stars == 0 && s.Commits.TotalCommits > 50
		},
	},
	{
		id:       IDTombstone,
		emoji:    "⚰️",
		title:    "Repository: Officially Dead",
		severity: 2,
		describe: func(s domain.Snapshot) string {
			return "This repo is archived. A monument to abandoned dreams."
		},
		predicate: func(s domain.Snapshot) bool { return s.Repo.Archived },
	},
	{
		id:       IDUnlicensed,
		emoji:    "⚖️",
		title:    "Legal Gray Area Specialist",
		severity: 2,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits, zero license. Nobody can legally touch this code.", s.Commits.TotalCommits)
		},
		predicate: func(s domain.Snapshot) bool {
			return s.Repo.License == "" && s.Commits.TotalCommits > 20
		},
	},
	{
		id:       IDUndiscoverable,
		emoji:    "🏷️",
		title:    "SEO Failure",
		severity: 1,
		describe: func(s domain.Snapshot) string {
			return "Zero topics. You're coding in a dark room with the door locked."
		},
		predicate: func(s domain.Snapshot) bool { return len(s.Repo.Topics) == 0 },
	},
	{
		id:       IDCommitInflation,
		emoji:    "🎯",
		title:    "Commit Count Inflation Expert",
		severity: 2,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits. Quality over quantity doesn't exist in your universe.", s.Commits.TotalCommits)
		},
		predicate: func(s domain.Snapshot) bool { return s.Commits.TotalCommits > 1000 },
	},
	{
		id:       IDFreshMeat,
		emoji:    "👶",
		title:    "Git Noob",
		severity: 1,
		describe: func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits total. Are you new here or just scared?", s.Commits.TotalCommits)
		},
		predicate: func(s domain.Snapshot) bool {
			return s.Commits.TotalCommits > 0 && s.Commits.TotalCommits < 10
		},
	},
}
