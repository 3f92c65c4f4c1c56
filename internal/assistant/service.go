package assistant

import (
	"context"
	"log/slog"
	"time"
)

// Metrics receives one record per assistant call; result is "improved"
// or "fallback".
type Metrics interface {
	ObserveAssistantCall(op, result string, seconds float64)
}

type nopMetrics struct{}

func (nopMetrics) ObserveAssistantCall(string, string, float64) {}

// Service is the surface handlers consume. It never returns an error:
// any provider failure is logged and the original text comes back
// unchanged, so the caller is never blocked.
type Service struct {
	inner   Assistant
	log     *slog.Logger
	metrics Metrics
}

func NewService(inner Assistant, log *slog.Logger, metrics Metrics) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Service{
		inner:   inner,
		log:     log,
		metrics: metrics,
	}
}

func (s *Service) Refine(ctx context.Context, title, raw string) Result {
	start := time.Now()
	text, err := s.inner.Refine(ctx, title, raw)

	if err != nil {
		s.log.Warn("assistant refine unavailable", "err", err)
		s.metrics.ObserveAssistantCall("refine", "fallback", time.Since(start).Seconds())

		return Result{Text: raw}
	}

	if text == "" || text == raw {
		s.metrics.ObserveAssistantCall("refine", "fallback", time.Since(start).Seconds())
		return Result{Text: raw}
	}

	s.metrics.ObserveAssistantCall("refine", "improved", time.Since(start).Seconds())

	return Result{Text: text, Improved: true}
}

func (s *Service) Summarize(ctx context.Context, text string) Result {
	start := time.Now()
	summary, err := s.inner.Summarize(ctx, text)

	if err != nil {
		s.log.Warn("assistant summarize unavailable", "err", err)
		s.metrics.ObserveAssistantCall("summarize", "fallback", time.Since(start).Seconds())

		return Result{Text: text}
	}

	if summary == "" || summary == text {
		s.metrics.ObserveAssistantCall("summarize", "fallback", time.Since(start).Seconds())
		return Result{Text: text}
	}

	s.metrics.ObserveAssistantCall("summarize", "improved", time.Since(start).Seconds())

	return Result{Text: summary, Improved: true}
}
