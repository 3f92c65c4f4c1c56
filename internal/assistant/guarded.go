package assistant

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker open")

type GuardedConfig struct {
	Timeout          time.Duration // hard timeout per call
	FailureThreshold int           // consecutive failures to open circuit
	Cooldown         time.Duration // how long to stay open before half-open
	HalfOpenMaxCalls int           // allow N trial calls in half-open
}

// Guarded wraps a provider with a per-call timeout and a circuit breaker
// so a slow or dead provider cannot pile up requests.
type Guarded struct {
	inner Assistant
	cfg   GuardedConfig
	mu    sync.Mutex

	state string // "closed" | "open" | "half_open"

	consecutiveFailures int
	openedAt            time.Time
	halfOpenInFlight    int
}

func NewGuarded(inner Assistant, cfg GuardedConfig) *Guarded {
	//defaults
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 15 * time.Second
	}
	if cfg.HalfOpenMaxCalls <= 0 {
		cfg.HalfOpenMaxCalls = 1
	}

	return &Guarded{
		inner: inner,
		cfg:   cfg,
		state: "closed",
	}
}

func (g *Guarded) Refine(ctx context.Context, title, raw string) (string, error) {
	return g.call(ctx, func(cctx context.Context) (string, error) {
		return g.inner.Refine(cctx, title, raw)
	})
}

func (g *Guarded) Summarize(ctx context.Context, text string) (string, error) {
	return g.call(ctx, func(cctx context.Context) (string, error) {
		return g.inner.Summarize(cctx, text)
	})
}

func (g *Guarded) call(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	// fail-fast gate
	if !g.allowRequest() {
		return "", ErrCircuitOpen
	}

	// enforce timeout
	cctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	text, err := fn(cctx)

	g.afterRequest(err)

	return text, err
}

func (g *Guarded) allowRequest() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case "closed":
		return true
	case "open":
		// cooldown has passed? move to half open
		if time.Since(g.openedAt) >= g.cfg.Cooldown {
			g.state = "half_open"
			g.halfOpenInFlight = 0
			g.halfOpenInFlight++
			return true
		}
		return false
	case "half_open":
		if g.halfOpenInFlight >= g.cfg.HalfOpenMaxCalls {
			return false
		}
		g.halfOpenInFlight++
		return true

	default:
		// safe fallback
		return true
	}
}

func (g *Guarded) afterRequest(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// half-open call just finished
	if g.state == "half_open" && g.halfOpenInFlight > 0 {
		g.halfOpenInFlight--
	}

	if err == nil {
		// success => close circuit and reset counters
		g.consecutiveFailures = 0
		g.state = "closed"
		return
	}

	// failure
	g.consecutiveFailures++

	// if half-open failed, reopen immediately
	if g.state == "half_open" {
		g.state = "open"
		g.openedAt = time.Now()
		return
	}

	// if failures reached threshold, open circuit
	if g.consecutiveFailures >= g.cfg.FailureThreshold {
		g.state = "open"
		g.openedAt = time.Now()
	}
}
