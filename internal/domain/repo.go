package domain

import "time"

// RepoMetadata describes a repository as reported by the hosting provider.
// Fetched once per analysis run.
type RepoMetadata struct {
	Owner         string    `json:"owner"`
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Description   string    `json:"description"`
	Language      string    `json:"language"`
	License       string    `json:"license"` // SPDX id or empty when absent
	Topics        []string  `json:"topics"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	OpenIssues    int       `json:"open_issues"`
	Archived      bool      `json:"archived"`
	Fork          bool      `json:"fork"`
	DefaultBranch string    `json:"default_branch"`
	PushedAt      time.Time `json:"pushed_at"`
}

// UserInfo describes a user profile as reported by the hosting provider.
type UserInfo struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	ProfileURL  string `json:"profile_url"`
}

// DocMetrics holds README completeness signals.
type DocMetrics struct {
	ReadmePresent     bool `json:"readme_present"`
	Length            int  `json:"length"`
	WordCount         int  `json:"word_count"`
	HasCodeExample    bool `json:"has_code_example"`
	HasInstallSection bool `json:"has_install_section"`
	HasUsageSection   bool `json:"has_usage_section"`
}
