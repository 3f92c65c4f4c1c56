package observability

// ObserveAssistantCall records one text-assistant call outcome.
// result is "improved" or "fallback".
func (p *Prom) ObserveAssistantCall(op, result string, seconds float64) {
	p.AssistantResults.WithLabelValues(op, result).Inc()
	p.AssistantDuration.WithLabelValues(op, result).Observe(seconds)
}
