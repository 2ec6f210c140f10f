package identityProvider

import (
	"assettracker/models"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

func signedHeaders(t *testing.T, id string, ts time.Time, payload []byte) http.Header {
	t.Helper()
	timestamp := strconv.FormatInt(ts.Unix(), 10)
	mac := hmac.New(sha256.New, testSigningKey)
	mac.Write([]byte(fmt.Sprintf("%s.%s.%s", id, timestamp, payload)))

	h := http.Header{}
	h.Set("svix-id", id)
	h.Set("svix-timestamp", timestamp)
	h.Set("svix-signature", "v1,"+base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	return h
}

func TestWebhookVerifier(t *testing.T) {
	secret := "whsec_" + base64.StdEncoding.EncodeToString(testSigningKey)
	payload := []byte(`{"type":"user.deleted","object":"event","data":{"id":"user_1","deleted":true}}`)

	t.Run("valid signature", func(t *testing.T) {
		v := NewWebhookVerifier(secret)
		event, err := v.Verify(payload, signedHeaders(t, "msg_1", time.Now(), payload))
		require.NoError(t, err)
		assert.Equal(t, models.EventUserDeleted, event.Type)
		assert.JSONEq(t, `{"id":"user_1","deleted":true}`, string(event.Data))
	})

	t.Run("tampered payload", func(t *testing.T) {
		v := NewWebhookVerifier(secret)
		headers := signedHeaders(t, "msg_1", time.Now(), payload)
		_, err := v.Verify([]byte(`{"type":"user.deleted","data":{"id":"user_2"}}`), headers)
		assert.ErrorIs(t, err, models.ErrWebhookVerification)
	})

	t.Run("missing headers", func(t *testing.T) {
		v := NewWebhookVerifier(secret)
		headers := signedHeaders(t, "msg_1", time.Now(), payload)
		headers.Del("svix-signature")
		_, err := v.Verify(payload, headers)
		assert.ErrorIs(t, err, models.ErrWebhookVerification)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		v := NewWebhookVerifier(secret)
		_, err := v.Verify(payload, signedHeaders(t, "msg_1", time.Now().Add(-time.Hour), payload))
		assert.ErrorIs(t, err, models.ErrWebhookVerification)
	})

	t.Run("missing secret is internal", func(t *testing.T) {
		v := NewWebhookVerifier("")
		_, err := v.Verify(payload, signedHeaders(t, "msg_1", time.Now(), payload))
		assert.ErrorIs(t, err, models.ErrInternal)
	})
}
