package middleware

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umang00/Git-Roast-MCP/internal/domain"
)

// recordingWriter captures audit writes and can simulate a slow database.
type recordingWriter struct {
	mu      sync.Mutex
	delay   time.Duration
	records []string // "action path"
	done    chan struct{}
}

func (w *recordingWriter) WriteAudit(requestID, action, target, details, ip, userAgent string) error {
	if w.delay > 0 {
		time.Sleep(w.delay)
	}
	w.mu.Lock()
	w.records = append(w.records, action+" "+target)
	w.mu.Unlock()
	select {
	case w.done <- struct{}{}:
	default:
	}
	return nil
}

func newApp(w *recordingWriter) *fiber.App {
	app := fiber.New()
	app.Use(AuditMiddleware(w))
	app.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuditMiddlewareRecordsRequest(t *testing.T) {
	w := &recordingWriter{done: make(chan struct{}, 1)}
	app := newApp(w)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	select {
	case <-w.done:
	case <-time.After(time.Second):
		t.Fatal("audit record was never written")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	require.Len(t, w.records, 1)
	assert.Equal(t, domain.AuditActionRequest+" /ping", w.records[0])
}

func TestAuditMiddlewareDoesNotBlockResponse(t *testing.T) {
	w := &recordingWriter{delay: 300 * time.Millisecond, done: make(chan struct{}, 1)}
	app := newApp(w)

	start := time.Now()
	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The slow writer runs off the request path.
	assert.Less(t, time.Since(start), 200*time.Millisecond)

	select {
	case <-w.done:
	case <-time.After(time.Second):
		t.Fatal("audit record was never written")
	}
}
