package kv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/geocoder89/infohub/internal/domain/user"
	kvrepo "github.com/geocoder89/infohub/internal/repo/kv"
	"github.com/geocoder89/infohub/internal/store/memstore"
)

func TestUsersListEmptyBoard(t *testing.T) {
	repo := kvrepo.NewUsersRepo(memstore.New())

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if len(users) != 0 {
		t.Fatalf("expected empty user list, got %d", len(users))
	}
}

func TestAddKeepsInsertionOrderAndDuplicates(t *testing.T) {
	repo := kvrepo.NewUsersRepo(memstore.New())
	ctx := context.Background()

	a := user.User{ID: "u1", Name: "First", Email: "same@college.edu", Role: user.RoleStudent, Year: user.Year1}
	b := user.User{ID: "u2", Name: "Second", Email: "same@college.edu", Role: user.RoleStudent, Year: user.Year2}

	if err := repo.Add(ctx, a); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := repo.Add(ctx, b); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	// duplicate emails are allowed; both entries survive
	if len(users) != 2 || users[0].ID != "u1" || users[1].ID != "u2" {
		t.Fatalf("unexpected user list: %+v", users)
	}

	// login resolves duplicates by first match
	found, err := repo.FindByEmail(ctx, "same@college.edu")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}

	if found.ID != "u1" {
		t.Fatalf("expected first matching user, got %q", found.ID)
	}
}

func TestFindByEmailMissing(t *testing.T) {
	repo := kvrepo.NewUsersRepo(memstore.New())

	_, err := repo.FindByEmail(context.Background(), "nobody@college.edu")
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByRole(t *testing.T) {
	repo := kvrepo.NewUsersRepo(memstore.New())
	ctx := context.Background()

	_, err := repo.FindByRole(ctx, user.RoleTutor)
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	tutor := user.User{ID: "t1", Name: "Dr. Smith", Email: "smith@college.edu", Role: user.RoleTutor}

	if err := repo.Add(ctx, tutor); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	found, err := repo.FindByRole(ctx, user.RoleTutor)
	if err != nil {
		t.Fatalf("FindByRole error: %v", err)
	}

	if found.ID != "t1" {
		t.Fatalf("expected tutor t1, got %q", found.ID)
	}
}
