package providers

import (
	"assettracker/models"
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock_providers.go -package=providers assettracker/providers AuthMiddlewareService,ZapLoggerProvider,RedisProvider,IdentityProvider,WebhookVerifier,ImageStore,Summarizer

type AuthMiddlewareService interface {
	SessionMiddleware() func(http.Handler) http.Handler
	GetSessionFromContext(r *http.Request) models.Session
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetAppEnv() string
	GetAllowedOrigins() []string
	GetRedisAddr() string
	GetRedisPassword() string
	GetClerkSecretKey() string
	GetClerkJWTPublicKey() string
	GetClerkWebhookSecret() string
	GetCloudinaryCloudName() string
	GetCloudinaryAPIKey() string
	GetCloudinaryAPISecret() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetSummarizerTimeout() time.Duration
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// IdentityProvider is the hosted identity backend. GetUser returns an error
// wrapping models.ErrNotFound when the user does not exist.
type IdentityProvider interface {
	GetUser(ctx context.Context, userID string) (models.IdentityUser, error)
	ListOrganizationMembers(ctx context.Context, orgID string) ([]models.OrganizationMember, error)
	ListUserOrganizationIDs(ctx context.Context, userID string) ([]string, error)
}

type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) (models.WebhookEvent, error)
}

type ImageStore interface {
	Upload(ctx context.Context, data string, folder string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}
