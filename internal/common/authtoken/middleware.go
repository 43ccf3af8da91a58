package authtoken

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	commonerrors "github.com/bookworm-labs/bookstore-api/internal/common/errors"
	commonhttp "github.com/bookworm-labs/bookstore-api/internal/common/http"
	"github.com/bookworm-labs/bookstore-api/internal/common/logger"
	"github.com/bookworm-labs/bookstore-api/internal/observability/metrics"
)

// Claims is the verified identity carried by a session token.
type Claims struct {
	Username string
}

type contextKey string

const claimsKey contextKey = "session_claims"

// Middleware verifies the session token on the Authorization header before
// the wrapped handler runs. A missing header is reported as 403 and an
// invalid or expired token as 401, matching the public API contract.
func Middleware(secret string, log *logger.Logger) func(next http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				log.Warnf("token auth failed path=%s: missing authorization header", r.URL.Path)
				commonhttp.HandleError(w, r, commonerrors.ErrMissingToken, log)
				return
			}

			claims, err := ParseToken(raw, secretBytes)
			if err != nil {
				log.Warnf("token auth failed path=%s: %v", r.URL.Path, err)
				commonhttp.HandleError(w, r, commonerrors.ErrInvalidToken.WithCause(err), log)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func FromContext(ctx context.Context) (Claims, bool) {
	val := ctx.Value(claimsKey)
	claims, ok := val.(Claims)
	return claims, ok
}

// extractToken reads the Authorization header, tolerating both a bare token
// and the "Bearer " scheme.
func extractToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if after, ok := strings.CutPrefix(raw, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return raw
}

func ParseToken(tokenString string, secret []byte) (Claims, error) {
	metrics.TokenVerificationsTotal.Inc()

	claims, err := parseToken(tokenString, secret)
	if err != nil {
		metrics.TokenVerificationsFailed.Inc()
	}
	return claims, err
}

func parseToken(tokenString string, secret []byte) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return Claims{}, err
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims type")
	}

	username, _ := mapClaims["usr"].(string)
	if username == "" {
		return Claims{}, errors.New("missing usr claim")
	}

	return Claims{Username: username}, nil
}
