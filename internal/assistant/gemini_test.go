package assistant_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geocoder89/infohub/internal/assistant"
)

func TestGeminiParsesCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Refined announcement."}]}}]}`))
	}))
	defer srv.Close()

	g := assistant.NewGemini(assistant.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})

	text, err := g.Refine(context.Background(), "Title", "raw")
	if err != nil {
		t.Fatalf("Refine error: %v", err)
	}
	if text != "Refined announcement." {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestGeminiEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	g := assistant.NewGemini(assistant.GeminiConfig{BaseURL: srv.URL})

	_, err := g.Summarize(context.Background(), "text")
	if err == nil {
		t.Fatalf("expected error on empty candidates")
	}
}

func TestGeminiNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := assistant.NewGemini(assistant.GeminiConfig{BaseURL: srv.URL})

	_, err := g.Refine(context.Background(), "Title", "raw")
	if err == nil {
		t.Fatalf("expected error on non-200 status")
	}
}
