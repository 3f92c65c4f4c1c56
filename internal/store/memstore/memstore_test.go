package memstore_test

import (
	"context"
	"testing"

	"github.com/geocoder89/infohub/internal/store/memstore"
)

func TestRoundTrip(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if ok {
		t.Fatalf("expected absent key")
	}

	if err := s.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if string(v) != "v1" {
		t.Fatalf("expected v1, got %q", v)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	_, ok, _ = s.Get(ctx, "k")
	if ok {
		t.Fatalf("expected key gone after delete")
	}
}

func TestReturnedSliceIsACopy(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("abc"))

	v, _, _ := s.Get(ctx, "k")
	v[0] = 'x'

	again, _, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored blob was mutated through the returned slice")
	}
}
