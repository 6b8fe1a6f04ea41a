package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything that can report its own health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// pingerFunc adapts a function to the Pinger interface.
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler constructs a HealthHandler with named dependency checks.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{checks: make(map[string]Pinger)}
}

// AddCheck registers a named readiness check.
func (h *HealthHandler) AddCheck(name string, p Pinger) {
	h.checks[name] = p
}

// AddCheckFunc registers a named readiness check from a plain function.
func (h *HealthHandler) AddCheckFunc(name string, fn func(ctx context.Context) error) {
	h.checks[name] = pingerFunc(fn)
}

// Liveness reports the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness pings every registered dependency and reports per-component
// status. Any failure yields a 503.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]string, len(h.checks))
	healthy := true
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			components[name] = "down"
			healthy = false
			continue
		}
		components[name] = "up"
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "components": components})
}
