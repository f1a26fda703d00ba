package coach

import (
	"context"
	"log/slog"
	"time"

	"github.com/brentlaster/spades/internal/ports"
)

// DefaultTimeout bounds a single advisor call.
const DefaultTimeout = 5 * time.Second

// Coach asks a primary advisor once and falls back to local tips when it
// errors, times out or returns nothing. Advice never fails.
type Coach struct {
	primary ports.AdvisorPort
	timeout time.Duration
	logger  *slog.Logger
}

// New wraps primary. A nil primary means local tips only.
func New(primary ports.AdvisorPort, timeout time.Duration, logger *slog.Logger) *Coach {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coach{primary: primary, timeout: timeout, logger: logger}
}

// Advice returns a tip for snap. A cancelled ctx still yields the local tip.
func (c *Coach) Advice(ctx context.Context, snap ports.Snapshot) string {
	if c.primary == nil {
		return Tip(snap)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.primary.Advise(ctx, snap)
	if err != nil || text == "" {
		c.logger.Debug("coach: advisor unavailable, using local tip", "phase", snap.Phase, "error", err)
		return Tip(snap)
	}
	return text
}
