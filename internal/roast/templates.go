package roast

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/Umang00/Git-Roast-MCP/internal/achievement"
	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// variant is one member of a template pool.
type variant struct {
	emoji   string
	title   string
	content func(s domain.Snapshot) string
}

func pct(ratio float64) int { return int(ratio*100 + 0.5) }

// templatePools maps achievement id to its passage pool. Selection within a
// pool is a hash of target id + achievement id: stable for a fixed input,
// varied across repositories.
var templatePools = map[string][]variant{
	achievement.IDWeekendNocturne: {
		{"🧛", "Full-Time Creature of the Night", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d%% of your commits land after 11 PM and %d%% on weekends. You have achieved the rare double: no sleep AND no life. The sun has filed a missing-person report.",
				pct(s.Commits.LateNightRatio), pct(s.Commits.WeekendRatio))
		}},
		{"🌑", "Schedule: Vampire, Commitment: Total", func(s domain.Snapshot) string {
			return fmt.Sprintf("Late nights (%d commits) plus weekends (%d commits). Most people pick one bad habit; you collected the set like they're trading cards.",
				s.Commits.LateNightCount, s.Commits.WeekendCount)
		}},
	},
	achievement.IDNocturnal: {
		{"🦉", "Certified Nocturnal Disaster", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d%% of your commits are between 11 PM and 5 AM. This isn't dedication, it's a cry for help. Every 3 AM commit is introducing bugs that 9 AM you has to fix.",
				pct(s.Commits.LateNightRatio))
		}},
		{"🌃", "The Midnight Shift Nobody Asked For", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits while the rest of humanity slept. Your code reeks of sleep deprivation and energy drinks. You're not a night owl, you're a walking liability with a git client.",
				s.Commits.LateNightCount)
		}},
		{"🧟", "Sleep Is For People With Working Code", func(s domain.Snapshot) string {
			return fmt.Sprintf("A %d%% late-night ratio. At this point your circadian rhythm is a merge conflict. Go. To. Bed.",
				pct(s.Commits.LateNightRatio))
		}},
	},
	achievement.IDWeekendWarrior: {
		{"💀", "Weekend Prisoner", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d%% weekend commits. %d times you chose code over literally anything else. While normal people are brunching, you're here, alone with your bugs.",
				pct(s.Commits.WeekendRatio), s.Commits.WeekendCount)
		}},
		{"📵", "Saturdays Are A Social Construct, Apparently", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d weekend commits. Your family has forgotten your face. Your friends have moved on. But hey, at least the streak is intact, right? RIGHT?!",
				s.Commits.WeekendCount)
		}},
	},
	achievement.IDLazyMessages: {
		{"💩", "Commit Message War Criminal", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits with messages like \"fix\", \"wip\", \"asdf\". WHAT DOES THIS MEAN?! You're not being efficient, you're being selfish to everyone (including future you) who has to decode this garbage.",
				s.Commits.LazyCount)
		}},
		{"📝", "The Illiterate Developer", func(s domain.Snapshot) string {
			return fmt.Sprintf("Average commit message: %.0f characters. Your shortest was %q. Even cavemen communicated better than this. Writing coherent sentences is FREE.",
				s.Commits.AvgMessageLen, s.Commits.ShortestMessage)
		}},
		{"🔤", "Vocabulary: Not Found", func(s domain.Snapshot) string {
			return fmt.Sprintf("A %d%% lazy-message ratio. Your git history reads like a ransom note assembled from Stack Overflow fragments.",
				pct(s.Commits.LazyRatio))
		}},
	},
	achievement.IDBugFactory: {
		{"🏭", "Industrial-Scale Bug Manufacturing", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits with \"fix\" in them — %d%% of your entire history is just unfucking your own fuckups. Every feature you add breaks two more things.",
				s.Commits.FixCount, pct(s.Commits.FixRatio))
		}},
		{"🔨", "Whack-A-Mole Champion", func(s domain.Snapshot) string {
			return fmt.Sprintf("A %d%% fix ratio. Your code is held together with duct tape, prayers, and increasingly desperate \"fixes\". Have you heard of tests? They're like fixes, but before.",
				pct(s.Commits.FixRatio))
		}},
	},
	achievement.IDNeverFinishes: {
		{"🚧", "Permanent Construction Site", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d WIP/TODO commits. You start features like New Year's resolutions: with enthusiasm that dies within 48 hours. Finish ONE thing. Just one.",
				s.Commits.WipCount)
		}},
		{"🫥", "Emotional Unavailability, In Code Form", func(s domain.Snapshot) string {
			return fmt.Sprintf("A %d%% work-in-progress ratio. Your TODO comments are older than some junior developers.",
				pct(s.Commits.WipRatio))
		}},
	},
	achievement.IDReadmeMissing: {
		{"📄", "No README? Seriously?", func(s domain.Snapshot) string {
			return fmt.Sprintf("No README detected. You had time to commit %d times but couldn't write ONE paragraph explaining what this is. \"Just read the code\" isn't documentation, it's an excuse.",
				s.Commits.TotalCommits)
		}},
		{"🕳️", "Documentation: A Void Stares Back", func(s domain.Snapshot) string {
			return "This is like opening a restaurant with no menu. A README takes ten minutes. Your users deserve at least ten minutes."
		}},
	},
	achievement.IDReadmeSkeleton: {
		{"📋", "Half-Assed Documentation Expert", func(s domain.Snapshot) string {
			return fmt.Sprintf("Your README is %d characters. Technically present, completely useless — the documentation equivalent of \"it works on my machine.\"",
				s.Docs.Length)
		}},
		{"🦴", "README: Skin And Bones", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d words of vague nothing. No installation steps, no usage, no mercy for anyone who finds this repo.",
				s.Docs.WordCount)
		}},
	},
	achievement.IDSoloAct: {
		{"🏝️", "Solo Dev Island — Population: You", func(s domain.Snapshot) string {
			return fmt.Sprintf("One contributor across %d commits. This code has \"bus factor of 1\" written all over it. When you're gone, this project dies — not because you're irreplaceable, but because nobody else will touch it.",
				s.Commits.TotalCommits)
		}},
		{"🦸", "Lone Wolf (Self-Described)", func(s domain.Snapshot) string {
			return "Nobody wants to collaborate, and after reading this git history, honestly? Understandable."
		}},
	},
	achievement.IDZeroStars: {
		{"⭐", "Universally Ignored", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits, zero stars. The internet looked at this and collectively decided: no.",
				s.Commits.TotalCommits)
		}},
	},
	achievement.IDTombstone: {
		{"⚰️", "Rest In Peace", func(s domain.Snapshot) string {
			return "This repository is archived. You're roasting a corpse. A monument to abandoned dreams."
		}},
	},
	achievement.IDUnlicensed: {
		{"⚖️", "Legal Gray Area Specialist", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits, zero license. Nobody can legally use this code. Pick a license — MIT is fine, it takes two minutes.",
				s.Commits.TotalCommits)
		}},
	},
	achievement.IDUndiscoverable: {
		{"🏷️", "Zero Topics — SEO Failure", func(s domain.Snapshot) string {
			return "No repository topics. None. This repo is invisible, undiscoverable, coding in a dark room with the door locked."
		}},
	},
	achievement.IDCommitInflation: {
		{"🎯", "Commit Count Inflation Expert", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits. Quality over quantity doesn't exist in your universe, and your universe has a lot of commits.",
				s.Commits.TotalCommits)
		}},
	},
	achievement.IDFreshMeat: {
		{"👶", "Git Noob — Fresh Meat", func(s domain.Snapshot) string {
			return fmt.Sprintf("%d commits total. This repo has the energy of someone who read \"Git for Dummies\" once and gave up halfway.",
				s.Commits.TotalCommits)
		}},
	},
}

// genericGood fires when nothing was unlocked and the score is decent.
var genericGood = []variant{
	{"⚡", "Suspiciously Clean", func(s domain.Snapshot) string {
		return fmt.Sprintf("%d commits and nothing properly embarrassing in sight. Either you actually know what you're doing or the incriminating history lives in a private repo.",
			s.Commits.TotalCommits)
	}},
	{"🧼", "Annoyingly Competent", func(s domain.Snapshot) string {
		return "No patterns worth destroying you over. Congratulations on being the least entertaining repository of the day."
	}},
}

// genericBad fires when nothing was unlocked and the score is poor anyway.
var genericBad = []variant{
	{"🎭", "The Ghost Developer", func(s domain.Snapshot) string {
		return fmt.Sprintf("%d commits of absolutely nothing noteworthy. No patterns detected because you're too boring to even fail in interesting ways.",
			s.Commits.TotalCommits)
	}},
	{"🫠", "Aggressively Forgettable", func(s domain.Snapshot) string {
		return "There isn't enough here to properly roast, which is somehow more pathetic than having a bad history."
	}},
}

// suggestionPools maps achievement id to advice strings appended to the
// template-path output.
var suggestionPools = map[string][]string{
	achievement.IDNocturnal: {
		"Get some sleep. Your code quality drops 50% after midnight and it shows.",
	},
	achievement.IDWeekendWarrior: {
		"Touch grass. The sun won't kill you, promise.",
	},
	achievement.IDWeekendNocturne: {
		"Get some sleep. Your code quality drops 50% after midnight and it shows.",
		"Touch grass. The sun won't kill you, promise.",
	},
	achievement.IDLazyMessages: {
		"Write commit messages like your job depends on it. One day, it will.",
		"If you can't explain what you did in ten words, you probably broke something.",
	},
	achievement.IDBugFactory: {
		"WRITE. TESTS. Fixing the same bug 47 times takes longer, promise.",
	},
	achievement.IDNeverFinishes: {
		"Finish ONE thing. Just one. I believe in you. Barely.",
	},
	achievement.IDReadmeMissing: {
		"Write a README. Any README. Literally anything is better than nothing.",
	},
	achievement.IDReadmeSkeleton: {
		"A README should explain WHAT, WHY, and HOW. Yours explains nothing.",
		"Add installation instructions. People shouldn't have to guess.",
	},
	achievement.IDUnlicensed: {
		"Add a license. MIT is fine. Just pick something.",
	},
	achievement.IDUndiscoverable: {
		"Add topics. Make your repo discoverable.",
	},
}

// closingSuggestions always trail the template-path advice.
var closingSuggestions = []string{
	"Git history is permanent. Make yours worth reading.",
	"Every commit is a chance to be better. Stop wasting them.",
}

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// formatHour renders an hour as 12-hour clock time.
func formatHour(h int) string {
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, ampm)
}

// peakActivity finds the busiest hour and weekday. ok is false when the
// histograms carry no data.
func peakActivity(c domain.CommitMetrics) (hour, day int, ok bool) {
	for h, n := range c.CommitsByHour {
		if n > c.CommitsByHour[hour] {
			hour = h
		}
	}
	for d, n := range c.CommitsByWeekday {
		if n > c.CommitsByWeekday[day] {
			day = d
		}
	}
	return hour, day, c.CommitsByHour[hour] > 0 && c.CommitsByWeekday[day] > 0
}

// scheduleVerdict judges a peak hour and weekday (0 = Sunday).
func scheduleVerdict(hour, day int) string {
	weekend := day == 0 || day == 6
	switch {
	case hour >= 2 && hour < 6:
		return "What are you doing awake at this hour? This isn't productivity, it's self-destruction with a keyboard. Go. To. Bed."
	case hour >= 23 || hour < 2:
		return "Midnight coding sessions aren't aesthetic, they're a sign you need better time management and possibly therapy."
	case weekend && hour >= 10 && hour < 14:
		return "It's the weekend. People are brunching. Socializing. Living. You're here. Debugging. Alone. Is this really the life you want?"
	case !weekend && hour >= 9 && hour < 17:
		return "Wow, look at you coding during normal hours like an actual professional! This might be your only redeeming quality."
	case weekend && (hour < 9 || hour > 20):
		return "Weekend plus unreasonable hours means you've given up on having a life. This is the saddest flex I've ever seen."
	default:
		return "Your coding schedule is as inconsistent as your commit messages. Which is to say: a complete mess."
	}
}

// schedulePassage turns the activity histograms into one passage about when
// the target does their damage.
func schedulePassage(s domain.Snapshot) (domain.RoastPassage, bool) {
	hour, day, ok := peakActivity(s.Commits)
	if !ok {
		return domain.RoastPassage{}, false
	}
	return domain.RoastPassage{
		Emoji:    "⏰",
		Title:    `Your Coding Schedule Screams "Red Flags"`,
		Content:  fmt.Sprintf("Peak activity: %s on %s. %s", formatHour(hour), weekdayNames[day], scheduleVerdict(hour, day)),
		Severity: 3,
	}, true
}

// pick deterministically selects a pool member: FNV-1a over target id and
// pool key, so output varies across repositories but is stable for a fixed
// input. Never random.
func pick(pool []variant, targetID, key string) variant {
	h := fnv.New32a()
	h.Write([]byte(targetID))
	h.Write([]byte("|"))
	h.Write([]byte(key))
	return pool[int(h.Sum32())%len(pool)]
}

// fromTemplates builds the deterministic fallback narrative: one passage per
// unlocked achievement, severity-descending, capped.
func (g *Generator) fromTemplates(s domain.Snapshot, achievements []domain.Achievement, score float64, fallbackReason string) Outcome {
	passages := make([]domain.RoastPassage, 0, len(achievements)+2)
	var suggestions []string
	seen := make(map[string]bool)

	for _, a := range achievements {
		pool, ok := templatePools[a.ID]
		if !ok {
			continue
		}
		v := pick(pool, s.TargetID, a.ID)
		passages = append(passages, domain.RoastPassage{
			Emoji:    v.emoji,
			Title:    v.title,
			Content:  v.content(s),
			Severity: a.Severity,
		})
		for _, sug := range suggestionPools[a.ID] {
			if !seen[sug] {
				suggestions = append(suggestions, sug)
				seen[sug] = true
			}
		}
	}

	if sp, ok := schedulePassage(s); ok {
		passages = append(passages, sp)
	}

	if len(passages) == 0 {
		pool := genericBad
		if score >= goodScoreFloor {
			pool = genericGood
		}
		v := pick(pool, s.TargetID, "generic")
		passages = append(passages, domain.RoastPassage{
			Emoji:    v.emoji,
			Title:    v.title,
			Content:  v.content(s),
			Severity: 2,
		})
	}

	// Severity-descending; ties keep catalog order.
	sort.SliceStable(passages, func(i, j int) bool {
		return passages[i].Severity > passages[j].Severity
	})
	// The status notice, when present, counts against the same cap.
	limit := maxPassages
	if fallbackReason != "" {
		limit--
	}
	if len(passages) > limit {
		passages = passages[:limit]
	}

	if fallbackReason != "" {
		passages = append(passages, domain.RoastPassage{
			Emoji:    "🤖",
			Title:    "LLM Status Update",
			Content:  "Our LLM is out sick today, but who needs it? I've roasted enough repos to handle this the old-fashioned way. Your code is still getting destroyed, just artisanally.",
			Severity: 1,
		})
	}

	suggestions = append(suggestions, closingSuggestions...)

	return Outcome{
		Passages:       passages,
		Suggestions:    suggestions,
		Source:         domain.NarrativeTemplate,
		FallbackReason: fallbackReason,
	}
}
