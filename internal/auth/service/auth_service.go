package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookworm-labs/bookstore-api/internal/common/authtoken"
	"github.com/bookworm-labs/bookstore-api/internal/common/clock"
	commoncrypto "github.com/bookworm-labs/bookstore-api/internal/common/crypto"
	commonerrors "github.com/bookworm-labs/bookstore-api/internal/common/errors"
	"github.com/bookworm-labs/bookstore-api/internal/common/logger"
	userdomain "github.com/bookworm-labs/bookstore-api/internal/user/domain"
	userrepo "github.com/bookworm-labs/bookstore-api/internal/user/repository"
)

// AuthService registers users, authenticates logins and issues/verifies
// session tokens. Sessions are stateless: a token stays valid until its
// natural expiry, there is no revocation list.
type AuthService struct {
	repo        userrepo.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
	jwtSecret   []byte
	tokenTTL    time.Duration
}

type AuthServiceDeps struct {
	Repo        userrepo.Repository
	Hasher      commoncrypto.PasswordHasher
	IDGenerator commoncrypto.IDGenerator
	Clock       clock.Clock
	Log         *logger.Logger
}

type AuthServiceConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthService(deps AuthServiceDeps, cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		repo:        deps.Repo,
		hasher:      deps.Hasher,
		idGenerator: deps.IDGenerator,
		clock:       deps.Clock,
		log:         deps.Log,
		jwtSecret:   []byte(cfg.JWTSecret),
		tokenTTL:    cfg.TokenTTL,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

// Register creates a new account. It returns no token; the caller must log
// in separately.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_attempt",
	}).Info("register attempt")

	if err := validateCredentials(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		return err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		return err
	}

	user := userdomain.User{
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "register_username_exists",
			}).Warn("register failed: already exists")
			return commonerrors.ErrDuplicateUser
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_create_failed",
		}).Errorf("register failed: %v", err)
		return err
	}

	incrementRegistrations()

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"action":   "register_success",
	}).Info("register success")

	return nil
}

// Login authenticates the credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_attempt",
	}).Info("login attempt")

	if err := validateCredentials(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_validation_failed",
		}).Warnf("login validation failed: %v", err)
		return "", err
	}

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_user_not_found",
			}).Warn("login failed: not found")
			return "", commonerrors.ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_invalid_password",
		}).Warn("login failed: invalid password")
		return "", commonerrors.ErrInvalidCredentials
	}

	token, err := s.issueSessionToken(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		return "", err
	}

	incrementLogins()

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"action":   "login_success",
	}).Info("login success")

	return token, nil
}

// VerifyToken checks the signature and expiry of a session token and
// returns the embedded username as the caller's authenticated identity.
func (s *AuthService) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", commonerrors.ErrMissingToken
	}

	claims, err := authtoken.ParseToken(token, s.jwtSecret)
	if err != nil {
		return "", commonerrors.ErrInvalidToken.WithCause(err)
	}

	return claims.Username, nil
}

func (s *AuthService) issueSessionToken(user userdomain.User) (string, error) {
	jti, err := s.idGenerator.NewID()
	if err != nil {
		return "", err
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"usr": user.Username,
		"jti": jti,
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	incrementSessionTokensIssued()
	return tokenString, nil
}
