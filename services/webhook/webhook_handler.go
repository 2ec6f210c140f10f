package webhookservice

import (
	"assettracker/providers"
	"assettracker/utils"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const maxWebhookBodyBytes = 1 << 20

type WebhookHandler struct {
	Service  WebhookService
	Verifier providers.WebhookVerifier
	Logger   providers.ZapLoggerProvider
}

func NewWebhookHandler(service WebhookService, verifier providers.WebhookVerifier, logger providers.ZapLoggerProvider) *WebhookHandler {
	return &WebhookHandler{
		Service:  service,
		Verifier: verifier,
		Logger:   logger,
	}
}

func (h *WebhookHandler) HandleIdentityWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		h.Logger.GetLogger().Warn("failed to read webhook body", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest, err, "unable to read request body")
		return
	}

	event, err := h.Verifier.Verify(payload, r.Header)
	if err != nil {
		h.Logger.GetLogger().Warn("webhook verification failed", zap.String("svix_id", r.Header.Get("svix-id")), zap.Error(err))
		utils.RespondAppError(w, err)
		return
	}

	if err := h.Service.HandleEvent(r.Context(), event); err != nil {
		h.Logger.GetLogger().Error("failed to process webhook", zap.String("event_type", event.Type), zap.Error(err))
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "webhook processed",
	})
}
