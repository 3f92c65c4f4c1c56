// Package session owns the board's single active session: a current-user
// pointer loaded from the store, set on login and cleared on logout. The
// pointer lives in the store, not in package state, so a restarted process
// resumes the same session.
package session

import (
	"context"

	"github.com/geocoder89/infohub/internal/domain/user"
)

type Store interface {
	Current(ctx context.Context) (user.User, bool, error)
	SetCurrent(ctx context.Context, u user.User) error
	Clear(ctx context.Context) error
}

type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Current returns the signed-in user, if any.
func (m *Manager) Current(ctx context.Context) (user.User, bool, error) {
	return m.store.Current(ctx)
}

// SignIn persists the current-user pointer.
func (m *Manager) SignIn(ctx context.Context, u user.User) error {
	return m.store.SetCurrent(ctx, u)
}

// SignOut clears the store entry; signing out twice is harmless.
func (m *Manager) SignOut(ctx context.Context) error {
	return m.store.Clear(ctx)
}
