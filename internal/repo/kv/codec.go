// Package kv implements the board repository: users, posts and the
// current-session pointer, each persisted as one JSON blob in a keyed
// store. Every write is a whole-blob read-modify-write; last writer wins
// within a single session, which is the only concurrency the board needs.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/geocoder89/infohub/internal/store"
)

// storage keys, shared namespace with the original board
const (
	usersKey       = "infohub_users"
	postsKey       = "infohub_posts"
	currentUserKey = "infohub_current_user"
)

var (
	// ErrStorageUnavailable wraps any backend read/write failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrCorruptData means a stored blob no longer parses as the expected
	// entity shape. Surfaced, never silently repaired.
	ErrCorruptData = errors.New("corrupt stored data")
)

func wrapUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

func load(ctx context.Context, kv store.KV, key string, out any) (bool, error) {
	b, ok, err := kv.Get(ctx, key)

	if err != nil {
		return false, wrapUnavailable(err)
	}

	if !ok {
		return false, nil
	}

	err = json.Unmarshal(b, out)

	if err != nil {
		return false, fmt.Errorf("%w: key %s: %v", ErrCorruptData, key, err)
	}

	return true, nil
}

func save(ctx context.Context, kv store.KV, key string, v any) error {
	b, err := json.Marshal(v)

	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	err = kv.Set(ctx, key, b)

	if err != nil {
		return wrapUnavailable(err)
	}

	return nil
}
