package identityProvider

import (
	"assettracker/models"
	"assettracker/providers"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	svix "github.com/svix/svix-webhooks/go"
)

var signatureHeaders = []string{"svix-id", "svix-timestamp", "svix-signature"}

type SvixVerifier struct {
	webhook *svix.Webhook
	initErr error
}

// NewWebhookVerifier returns a verifier for the signing secret. A missing or
// malformed secret is reported on every Verify call as an internal error.
func NewWebhookVerifier(secret string) providers.WebhookVerifier {
	if secret == "" {
		return &SvixVerifier{initErr: fmt.Errorf("%w: webhook signing secret is not configured", models.ErrInternal)}
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return &SvixVerifier{initErr: fmt.Errorf("%w: invalid webhook signing secret: %v", models.ErrInternal, err)}
	}
	return &SvixVerifier{webhook: wh}
}

func (v *SvixVerifier) Verify(payload []byte, headers http.Header) (models.WebhookEvent, error) {
	if v.initErr != nil {
		return models.WebhookEvent{}, v.initErr
	}
	for _, h := range signatureHeaders {
		if headers.Get(h) == "" {
			return models.WebhookEvent{}, fmt.Errorf("%w: missing %s header", models.ErrWebhookVerification, h)
		}
	}
	if err := v.webhook.Verify(payload, headers); err != nil {
		return models.WebhookEvent{}, fmt.Errorf("%w: %v", models.ErrWebhookVerification, err)
	}

	var event models.WebhookEvent
	if err := jsoniter.Unmarshal(payload, &event); err != nil {
		return models.WebhookEvent{}, fmt.Errorf("%w: malformed event payload: %v", models.ErrWebhookVerification, err)
	}
	return event, nil
}
