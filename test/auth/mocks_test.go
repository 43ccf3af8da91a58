package auth

import (
	"context"
	"testing"

	"github.com/bookworm-labs/bookstore-api/internal/common/logger"
	userdomain "github.com/bookworm-labs/bookstore-api/internal/user/domain"
	userrepo "github.com/bookworm-labs/bookstore-api/internal/user/repository"
)

func mustLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("", "test", "ERROR")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	return log
}

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user userdomain.User) error
	findByUsernameFunc func(ctx context.Context, username string) (userdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user userdomain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (userdomain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

type mockHasher struct {
	hashFunc    func(password string) (string, error)
	compareFunc func(hash string, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *mockHasher) Compare(hash string, password string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, password)
	}
	if hash == "hashed_"+password {
		return nil
	}
	return errMismatchedHash
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "test-id", nil
}
