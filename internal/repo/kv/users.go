package kv

import (
	"context"

	"github.com/geocoder89/infohub/internal/domain/user"
	"github.com/geocoder89/infohub/internal/store"
)

type UsersRepo struct {
	kv store.KV
}

func NewUsersRepo(kv store.KV) *UsersRepo {
	return &UsersRepo{kv: kv}
}

// List returns every known user in insertion order. An empty board is a
// valid empty result, not an error.
func (r *UsersRepo) List(ctx context.Context) ([]user.User, error) {
	var users []user.User

	_, err := load(ctx, r.kv, usersKey, &users)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// Add appends unconditionally. Email uniqueness is deliberately not
// enforced; login resolves duplicates by first match.
func (r *UsersRepo) Add(ctx context.Context, u user.User) error {
	users, err := r.List(ctx)

	if err != nil {
		return err
	}

	return save(ctx, r.kv, usersKey, append(users, u))
}

// FindByEmail returns the first user with a matching email.
func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (user.User, error) {
	users, err := r.List(ctx)

	if err != nil {
		return user.User{}, err
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}

// FindByRole returns the first user with a matching role. Quick-login uses
// it to reuse an already provisioned demo identity.
func (r *UsersRepo) FindByRole(ctx context.Context, role user.Role) (user.User, error) {
	users, err := r.List(ctx)

	if err != nil {
		return user.User{}, err
	}

	for _, u := range users {
		if u.Role == role {
			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}
