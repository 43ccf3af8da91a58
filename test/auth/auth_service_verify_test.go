package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookworm-labs/bookstore-api/internal/auth/service"
	commonerrors "github.com/bookworm-labs/bookstore-api/internal/common/errors"
	userdomain "github.com/bookworm-labs/bookstore-api/internal/user/domain"
)

func loginAs(t *testing.T, svc *service.AuthService, repo *mockUserRepo, username string) string {
	t.Helper()

	repo.findByUsernameFunc = func(ctx context.Context, u string) (userdomain.User, error) {
		return userdomain.User{
			Username:     username,
			PasswordHash: "hashed_password123",
		}, nil
	}

	token, err := svc.Login(context.Background(), service.LoginInput{
		Username: username,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return token
}

func TestAuthService_VerifyToken_RoundTrip(t *testing.T) {
	svc, repo, _, _, mockClock := setupAuthService(t)

	// Token expiry is checked against wall-clock time during parsing, so
	// issue relative to the real clock.
	mockClock.SetTime(time.Now())

	token := loginAs(t, svc, repo, "alice")

	identity, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("expected token to verify, got %v", err)
	}
	if identity != "alice" {
		t.Errorf("expected identity alice, got %s", identity)
	}
}

func TestAuthService_VerifyToken_Missing(t *testing.T) {
	svc, _, _, _, _ := setupAuthService(t)

	_, err := svc.VerifyToken("")
	if !errors.Is(err, commonerrors.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	svc, repo, _, _, mockClock := setupAuthService(t)

	// Issued three hours ago with a two-hour TTL: expiry already passed.
	mockClock.SetTime(time.Now().Add(-3 * time.Hour))

	token := loginAs(t, svc, repo, "alice")

	_, err := svc.VerifyToken(token)
	if !errors.Is(err, commonerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_VerifyToken_Tampered(t *testing.T) {
	svc, repo, _, _, mockClock := setupAuthService(t)

	mockClock.SetTime(time.Now())

	token := loginAs(t, svc, repo, "alice")

	_, err := svc.VerifyToken(token + "x")
	if !errors.Is(err, commonerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	svc, repo, _, _, mockClock := setupAuthService(t)

	mockClock.SetTime(time.Now())

	token := loginAs(t, svc, repo, "alice")

	other := service.NewAuthService(
		service.AuthServiceDeps{
			Repo:        repo,
			Hasher:      &mockHasher{},
			IDGenerator: &mockIDGenerator{},
			Clock:       mockClock,
			Log:         mustLogger(t),
		},
		service.AuthServiceConfig{
			JWTSecret: "a-completely-different-signing-secret",
			TokenTTL:  2 * time.Hour,
		},
	)

	_, err := other.VerifyToken(token)
	if !errors.Is(err, commonerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}
