package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bookworm-labs/bookstore-api/internal/user/domain"
)

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, domain.User{Username: "alice", PasswordHash: "hash"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	user, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if user.PasswordHash != "hash" {
		t.Errorf("expected stored hash, got %s", user.PasswordHash)
	}
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, domain.User{Username: "alice"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err := repo.Create(ctx, domain.User{Username: "alice"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestMemoryRepository_FindUnknown(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.FindByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
