package kv

import (
	"context"

	"github.com/geocoder89/infohub/internal/domain/user"
	"github.com/geocoder89/infohub/internal/store"
)

// SessionRepo persists the single current-user pointer. It is a reference
// into the user set, not an entity of its own.
type SessionRepo struct {
	kv store.KV
}

func NewSessionRepo(kv store.KV) *SessionRepo {
	return &SessionRepo{kv: kv}
}

func (r *SessionRepo) Current(ctx context.Context) (user.User, bool, error) {
	var u user.User

	ok, err := load(ctx, r.kv, currentUserKey, &u)

	if err != nil {
		return user.User{}, false, err
	}

	return u, ok, nil
}

func (r *SessionRepo) SetCurrent(ctx context.Context, u user.User) error {
	return save(ctx, r.kv, currentUserKey, u)
}

func (r *SessionRepo) Clear(ctx context.Context) error {
	err := r.kv.Delete(ctx, currentUserKey)

	if err != nil {
		return wrapUnavailable(err)
	}

	return nil
}
