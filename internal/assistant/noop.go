package assistant

import "context"

// Noop hands the text back unchanged. Used when no API key is configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) Refine(_ context.Context, _, raw string) (string, error) {
	return raw, nil
}

func (n *Noop) Summarize(_ context.Context, text string) (string, error) {
	return text, nil
}
