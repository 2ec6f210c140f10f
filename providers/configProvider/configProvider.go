package configprovider

import (
	"assettracker/providers"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSummarizerTimeout = 15 * time.Second

type EnvConfigProvider struct {
	dbUser     string
	dbPassword string
	dbHost     string
	dbPort     string
	dbName     string
	serverPort string
	appEnv     string
	origins    []string

	redisAddr     string
	redisPassword string

	clerkSecretKey     string
	clerkJWTPublicKey  string
	clerkWebhookSecret string

	cloudinaryCloudName string
	cloudinaryAPIKey    string
	cloudinaryAPISecret string

	geminiAPIKey      string
	geminiModel       string
	summarizerTimeout time.Duration
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = os.Getenv("DB_PORT")
	e.dbName = os.Getenv("DB_NAME")
	e.serverPort = getEnvDefault("SERVER_PORT", "8080")
	e.appEnv = getEnvDefault("APP_ENV", "development")
	e.origins = splitList(getEnvDefault("CORS_ALLOWED_ORIGINS", "*"))

	e.redisAddr = os.Getenv("REDIS_ADDR")
	e.redisPassword = os.Getenv("REDIS_PASSWORD")

	e.clerkSecretKey = os.Getenv("CLERK_SECRET_KEY")
	// PEM keys are often stored on one line with escaped newlines
	e.clerkJWTPublicKey = strings.ReplaceAll(os.Getenv("CLERK_JWT_PUBLIC_KEY"), `\n`, "\n")
	e.clerkWebhookSecret = os.Getenv("CLERK_WEBHOOK_SIGNING_SECRET")

	e.cloudinaryCloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	e.cloudinaryAPIKey = os.Getenv("CLOUDINARY_API_KEY")
	e.cloudinaryAPISecret = os.Getenv("CLOUDINARY_API_SECRET")

	e.geminiAPIKey = os.Getenv("GEMINI_API_KEY")
	e.geminiModel = getEnvDefault("GEMINI_MODEL", "gemini-1.5-flash")
	e.summarizerTimeout = defaultSummarizerTimeout
	if raw := os.Getenv("SUMMARIZER_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid SUMMARIZER_TIMEOUT %q: %w", raw, err)
		}
		e.summarizerTimeout = d
	}
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}

func (e *EnvConfigProvider) GetAppEnv() string {
	return e.appEnv
}

func (e *EnvConfigProvider) GetAllowedOrigins() []string {
	return e.origins
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetRedisPassword() string {
	return e.redisPassword
}

func (e *EnvConfigProvider) GetClerkSecretKey() string {
	return e.clerkSecretKey
}

func (e *EnvConfigProvider) GetClerkJWTPublicKey() string {
	return e.clerkJWTPublicKey
}

func (e *EnvConfigProvider) GetClerkWebhookSecret() string {
	return e.clerkWebhookSecret
}

func (e *EnvConfigProvider) GetCloudinaryCloudName() string {
	return e.cloudinaryCloudName
}

func (e *EnvConfigProvider) GetCloudinaryAPIKey() string {
	return e.cloudinaryAPIKey
}

func (e *EnvConfigProvider) GetCloudinaryAPISecret() string {
	return e.cloudinaryAPISecret
}

func (e *EnvConfigProvider) GetGeminiAPIKey() string {
	return e.geminiAPIKey
}

func (e *EnvConfigProvider) GetGeminiModel() string {
	return e.geminiModel
}

func (e *EnvConfigProvider) GetSummarizerTimeout() time.Duration {
	return e.summarizerTimeout
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
