package configprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("reads values and defaults", func(t *testing.T) {
		t.Setenv("DB_USER", "tracker")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_NAME", "assets")
		t.Setenv("SERVER_PORT", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com")
		t.Setenv("CLERK_JWT_PUBLIC_KEY", `-----BEGIN PUBLIC KEY-----\nabc\n-----END PUBLIC KEY-----`)
		t.Setenv("SUMMARIZER_TIMEOUT", "")

		cfg := NewConfigProvider()
		require.NoError(t, cfg.LoadEnv())

		assert.Equal(t, "user=tracker password=secret host=localhost port=5432 dbname=assets sslmode=disable", cfg.GetDatabaseString())
		assert.Equal(t, "8080", cfg.GetServerPort())
		assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.GetAllowedOrigins())
		assert.Equal(t, "-----BEGIN PUBLIC KEY-----\nabc\n-----END PUBLIC KEY-----", cfg.GetClerkJWTPublicKey())
		assert.Equal(t, 15*time.Second, cfg.GetSummarizerTimeout())
	})

	t.Run("custom summarizer timeout", func(t *testing.T) {
		t.Setenv("SUMMARIZER_TIMEOUT", "3s")
		cfg := NewConfigProvider()
		require.NoError(t, cfg.LoadEnv())
		assert.Equal(t, 3*time.Second, cfg.GetSummarizerTimeout())
	})

	t.Run("invalid summarizer timeout", func(t *testing.T) {
		t.Setenv("SUMMARIZER_TIMEOUT", "soon")
		cfg := NewConfigProvider()
		assert.Error(t, cfg.LoadEnv())
	})
}
