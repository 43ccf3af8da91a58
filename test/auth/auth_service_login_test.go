package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/bookworm-labs/bookstore-api/internal/auth/service"
	commonerrors "github.com/bookworm-labs/bookstore-api/internal/common/errors"
	userdomain "github.com/bookworm-labs/bookstore-api/internal/user/domain"
	userrepo "github.com/bookworm-labs/bookstore-api/internal/user/repository"
)

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	username := "testuser"
	password := "password123"

	repo.findByUsernameFunc = func(ctx context.Context, u string) (userdomain.User, error) {
		if u != username {
			t.Errorf("expected lookup of %s, got %s", username, u)
		}
		return userdomain.User{
			Username:     username,
			PasswordHash: "hashed_" + password,
		}, nil
	}

	token, err := svc.Login(context.Background(), service.LoginInput{
		Username: username,
		Password: password,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.findByUsernameFunc = func(ctx context.Context, u string) (userdomain.User, error) {
		return userdomain.User{}, userrepo.ErrUserNotFound
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "missing",
		Password: "password123",
	})

	if !errors.Is(err, commonerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, hasher, _, _ := setupAuthService(t)

	repo.findByUsernameFunc = func(ctx context.Context, u string) (userdomain.User, error) {
		return userdomain.User{
			Username:     "testuser",
			PasswordHash: "hashed_password123",
		}, nil
	}

	hasher.compareFunc = func(hash, password string) error {
		return errMismatchedHash
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "testuser",
		Password: "wrongpassword",
	})

	if !errors.Is(err, commonerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_ValidationError(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.findByUsernameFunc = func(ctx context.Context, u string) (userdomain.User, error) {
		t.Error("repository must not be queried on validation failure")
		return userdomain.User{}, userrepo.ErrUserNotFound
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "",
		Password: "",
	})

	if !errors.Is(err, commonerrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
