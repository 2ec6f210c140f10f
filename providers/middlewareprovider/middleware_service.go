package middlewareprovider

import (
	"assettracker/models"
	"assettracker/providers"
	"assettracker/utils"
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type contextKey string

const sessionContextKey contextKey = "session_key"

type SessionAuthMiddleware struct {
	publicKey *rsa.PublicKey
	logger    providers.ZapLoggerProvider
}

func NewAuthMiddlewareService(publicKeyPEM string, logger providers.ZapLoggerProvider) (providers.AuthMiddlewareService, error) {
	if strings.TrimSpace(publicKeyPEM) == "" {
		return nil, errors.New("session public key is not configured")
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session public key")
	}
	return &SessionAuthMiddleware{publicKey: key, logger: logger}, nil
}

// SessionMiddleware attaches the caller session to the request context.
// Requests without a token continue anonymously; invalid tokens are rejected.
func (a *SessionAuthMiddleware) SessionMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := ParseSessionToken(token, a.publicKey)
			if err != nil {
				a.logger.GetLogger().Debug("rejected session token", zap.Error(err))
				utils.RespondError(w, http.StatusUnauthorized, err, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *SessionAuthMiddleware) GetSessionFromContext(r *http.Request) models.Session {
	session, _ := r.Context().Value(sessionContextKey).(models.Session)
	return session
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		if c, err := r.Cookie("__session"); err == nil {
			return c.Value
		}
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
