// Package assistant wraps the external generative-text collaborator that
// rewrites and summarizes announcement prose. The calls are best-effort:
// nothing the assistant does can block or fail a board operation.
package assistant

import "context"

// Assistant is the raw provider surface. Implementations may fail; the
// Service is the only thing handlers talk to.
type Assistant interface {
	Refine(ctx context.Context, title, raw string) (string, error)
	Summarize(ctx context.Context, text string) (string, error)
}

// Result is what callers consume: the text to use, and whether the
// provider actually improved it. Unavailable providers yield the original
// text with Improved=false.
type Result struct {
	Text     string `json:"text"`
	Improved bool   `json:"improved"`
}
