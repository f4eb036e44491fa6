// Package handler maps HTTP requests onto the analysis service and structured
// errors onto status codes.
package handler

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Umang00/Git-Roast-MCP/internal/port"
	"github.com/Umang00/Git-Roast-MCP/internal/service"
)

// RoastHandler handles analysis endpoints.
type RoastHandler struct {
	svc *service.RoastService
}

// NewRoastHandler creates a new roast handler.
func NewRoastHandler(svc *service.RoastService) *RoastHandler {
	return &RoastHandler{svc: svc}
}

// Register sets up analysis routes.
func (h *RoastHandler) Register(router fiber.Router) {
	router.Post("/roast", h.Roast)
	router.Get("/health", h.Health)
}

// RoastRequest is the analysis request body.
type RoastRequest struct {
	// Target is a repo URL, owner/repo pair, profile URL, or bare username.
	Target string `json:"target"`
	// Mode optionally forces interpretation: "repo" or "profile".
	Mode string `json:"mode"`
}

// Roast analyzes a repository or profile and returns the full report.
func (h *RoastHandler) Roast(c fiber.Ctx) error {
	var req RoastRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	target, err := service.ParseTarget(req.Target, req.Mode)
	if err != nil {
		return writeError(c, err)
	}

	switch target.Kind {
	case service.TargetRepo:
		result, err := h.svc.AnalyzeRepo(c.Context(), target.Owner, target.Repo)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(result)
	case service.TargetProfile:
		summary, err := h.svc.AnalyzeProfile(c.Context(), target.Username)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(summary)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown target kind"})
	}
}

// Health reports liveness.
func (h *RoastHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// writeError maps the structured error taxonomy onto HTTP. Unknown errors are
// logged and masked.
func writeError(c fiber.Ctx, err error) error {
	var pe *port.Error
	if !errors.As(err, &pe) {
		slog.Error("unclassified handler error", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	switch pe.Kind {
	case port.KindInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": pe.Message})
	case port.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": pe.Message})
	case port.KindRateLimited:
		if pe.RetryAfter > 0 {
			secs := int(pe.RetryAfter / time.Second)
			if secs < 1 {
				secs = 1
			}
			c.Set("Retry-After", strconv.Itoa(secs))
		}
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": pe.Message})
	case port.KindTransientFetch:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": pe.Message})
	default:
		slog.Error("unexpected error kind", "kind", pe.Kind, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
