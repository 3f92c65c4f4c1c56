package assistant_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/geocoder89/infohub/internal/assistant"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceFallsBackOnError(t *testing.T) {
	inner := &fakeAssistant{
		refineFn: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("provider down")
		},
	}

	svc := assistant.NewService(inner, testLogger(), nil)

	res := svc.Refine(context.Background(), "Bus Update", "the 6pm bus is late")

	if res.Improved {
		t.Fatalf("expected fallback result")
	}
	if res.Text != "the 6pm bus is late" {
		t.Fatalf("expected original text back, got %q", res.Text)
	}
}

func TestServiceFallsBackOnEmptyReply(t *testing.T) {
	inner := &fakeAssistant{
		summarizeFn: func(_ context.Context, _ string) (string, error) {
			return "", nil
		},
	}

	svc := assistant.NewService(inner, testLogger(), nil)

	res := svc.Summarize(context.Background(), "long announcement text")

	if res.Improved || res.Text != "long announcement text" {
		t.Fatalf("expected original text on empty reply, got %+v", res)
	}
}

func TestServiceReportsImprovement(t *testing.T) {
	inner := &fakeAssistant{
		refineFn: func(_ context.Context, _, _ string) (string, error) {
			return "A clearer announcement.", nil
		},
	}

	svc := assistant.NewService(inner, testLogger(), nil)

	res := svc.Refine(context.Background(), "Title", "raw text")

	if !res.Improved || res.Text != "A clearer announcement." {
		t.Fatalf("unexpected result: %+v", res)
	}
}
