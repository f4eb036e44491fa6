package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Umang00/Git-Roast-MCP/internal/adapter/ai"
	"github.com/Umang00/Git-Roast-MCP/internal/adapter/github"
	"github.com/Umang00/Git-Roast-MCP/internal/adapter/store"
	"github.com/Umang00/Git-Roast-MCP/internal/handler"
	"github.com/Umang00/Git-Roast-MCP/internal/middleware"
	"github.com/Umang00/Git-Roast-MCP/internal/port"
	"github.com/Umang00/Git-Roast-MCP/internal/roast"
	"github.com/Umang00/Git-Roast-MCP/internal/service"
	"github.com/Umang00/Git-Roast-MCP/pkg/config"
	"github.com/Umang00/Git-Roast-MCP/pkg/retry"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🔥 Starting GitRoast",
		"port", cfg.Port,
		"github_authenticated", cfg.GitHubToken != "",
		"ollama_chat", cfg.OllamaChatURL,
		"audit_enabled", cfg.DatabaseURL != "",
	)

	// ── Database (optional audit trail) ──────────────────────────────────
	var pgStore *store.PostgresStore
	if cfg.DatabaseURL != "" {
		var err error
		pgStore, err = store.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pgStore.Close()
	}

	// ── Adapters ─────────────────────────────────────────────────────────
	policy := retry.DefaultPolicy()
	policy.MaxAttempts = cfg.RetryAttempts

	source := github.NewClient(github.Options{
		BaseURL:       cfg.GitHubBaseURL,
		Token:         cfg.GitHubToken,
		MaxConcurrent: cfg.MaxConcurrent,
		Timeout:       cfg.GitHubTimeout,
		Policy:        policy,
	})

	// A missing narrative backend degrades to templates, it never blocks startup.
	var provider port.AIProvider
	if cfg.OllamaChatURL != "" {
		provider = ai.NewOllamaProvider(ai.OllamaEndpointConfig{
			BaseURL: cfg.OllamaChatURL,
			Model:   cfg.OllamaChatModel,
			Token:   cfg.OllamaChatToken,
		})
	}
	generator := roast.NewGenerator(provider, cfg.GenerateTimeout)

	// ── Services ─────────────────────────────────────────────────────────
	roastService := service.NewRoastService(source, generator, service.Limits{
		CommitCap:        cfg.CommitCap,
		ProfileRepoLimit: cfg.ProfileRepoLimit,
		ProfileCommitCap: cfg.ProfileCommitCap,
		Concurrency:      cfg.Concurrency,
	})

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // profile runs fan out over many repos
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	// Audit middleware (logs all requests when a database is configured)
	if pgStore != nil {
		app.Use(middleware.AuditMiddleware(pgStore))
	}

	// ── Routes ───────────────────────────────────────────────────────────
	api := app.Group("/api/v1")

	roastHandler := handler.NewRoastHandler(roastService)
	roastHandler.Register(api)

	if pgStore != nil {
		auditHandler := handler.NewAuditHandler(pgStore)
		auditHandler.Register(api)
	}

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
