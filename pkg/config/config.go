package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	Port    string
	AppName string

	// Database (optional; empty disables the audit trail)
	DatabaseURL string

	// GitHub API
	GitHubToken   string // optional; raises the rate-limit ceiling
	GitHubBaseURL string
	GitHubTimeout time.Duration
	MaxConcurrent int // in-flight GitHub requests across all workers
	RetryAttempts int

	// Analysis limits
	CommitCap        int
	ProfileRepoLimit int
	ProfileCommitCap int
	Concurrency      int // profile-mode workers

	// Ollama narrative endpoint (optional; empty URL disables generation)
	OllamaChatURL   string
	OllamaChatModel string
	OllamaChatToken string // Bearer token for Ollama Cloud (empty = local)

	GenerateTimeout time.Duration

	// Frontend
	FrontendURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envOrDefault("PORT", "3001"),
		AppName: envOrDefault("APP_NAME", "GitRoast"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		GitHubBaseURL: envOrDefault("GITHUB_BASE_URL", "https://api.github.com"),
		GitHubTimeout: envOrDefaultDuration("GITHUB_TIMEOUT", 30*time.Second),
		MaxConcurrent: envOrDefaultInt("GITHUB_MAX_CONCURRENT", 5),
		RetryAttempts: envOrDefaultInt("GITHUB_RETRY_ATTEMPTS", 4),

		CommitCap:        envOrDefaultInt("COMMIT_CAP", 1000),
		ProfileRepoLimit: envOrDefaultInt("PROFILE_REPO_LIMIT", 20),
		ProfileCommitCap: envOrDefaultInt("PROFILE_COMMIT_CAP", 100),
		Concurrency:      envOrDefaultInt("PROFILE_CONCURRENCY", 5),

		OllamaChatURL:   os.Getenv("OLLAMA_CHAT_URL"),
		OllamaChatModel: envOrDefault("OLLAMA_CHAT_MODEL", "qwen3"),
		OllamaChatToken: os.Getenv("OLLAMA_CHAT_TOKEN"),

		GenerateTimeout: envOrDefaultDuration("GENERATE_TIMEOUT", 20*time.Second),

		FrontendURL: envOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
