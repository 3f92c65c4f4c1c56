package observability

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/geocoder89/infohub/internal/store"
)

// InstrumentedKV wraps a key-value backend so every logical op is timed
// and classified. Drops in anywhere a store.KV is expected.
type InstrumentedKV struct {
	inner store.KV
	prom  *Prom
}

func NewInstrumentedKV(inner store.KV, prom *Prom) *InstrumentedKV {
	return &InstrumentedKV{
		inner: inner,
		prom:  prom,
	}
}

func (k *InstrumentedKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		b  []byte
		ok bool
	)

	err := k.observe("get", func() error {
		var err error
		b, ok, err = k.inner.Get(ctx, key)
		return err
	})

	return b, ok, err
}

func (k *InstrumentedKV) Set(ctx context.Context, key string, value []byte) error {
	return k.observe("set", func() error {
		return k.inner.Set(ctx, key, value)
	})
}

func (k *InstrumentedKV) Delete(ctx context.Context, key string) error {
	return k.observe("delete", func() error {
		return k.inner.Delete(ctx, key)
	})
}

func (k *InstrumentedKV) observe(op string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "ok"

	if err != nil {
		status = "error"
		k.prom.StoreErrors.WithLabelValues(op, classifyStoreErr(err)).Inc()
	}
	k.prom.StoreOpDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())

	return err
}

func classifyStoreErr(err error) string {
	if errors.Is(err, store.ErrUnavailable) {
		return "unavailable"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "timeout"
	case strings.Contains(msg, "connection"):
		return "connection"
	default:
		return "unknown"
	}
}
