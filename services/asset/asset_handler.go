package assetservice

import (
	"assettracker/models"
	"assettracker/providers"
	"assettracker/utils"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SideEffectsHeader lists best-effort actions that failed during a mutation.
const SideEffectsHeader = "X-Failed-Side-Effects"

type AssetHandler struct {
	Service        AssetService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewAssetHandler(service AssetService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *AssetHandler {
	return &AssetHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	session := h.AuthMiddleware.GetSessionFromContext(r)

	var req CreateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		h.Logger.GetLogger().Debug("failed to parse create asset body", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	result, err := h.Service.CreateAsset(r.Context(), session, req)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	writeSideEffects(w, result.SideEffects)
	utils.RespondJSON(w, http.StatusCreated, result.Asset)
}

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	session := h.AuthMiddleware.GetSessionFromContext(r)

	assets, err := h.Service.ListAssets(r.Context(), session)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) GetAssetStats(w http.ResponseWriter, r *http.Request) {
	session := h.AuthMiddleware.GetSessionFromContext(r)

	stats, err := h.Service.GetAssetStats(r.Context(), session)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, stats)
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	session := h.AuthMiddleware.GetSessionFromContext(r)
	assetID := assetIDParam(r)

	asset, err := h.Service.GetAsset(r.Context(), session, assetID)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	session := h.AuthMiddleware.GetSessionFromContext(r)
	assetID := assetIDParam(r)

	var req UpdateAssetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		h.Logger.GetLogger().Debug("failed to parse update asset body", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	result, err := h.Service.UpdateAsset(r.Context(), session, assetID, req)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	writeSideEffects(w, result.SideEffects)
	utils.RespondJSON(w, http.StatusOK, result.Asset)
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	session := h.AuthMiddleware.GetSessionFromContext(r)
	assetID := assetIDParam(r)

	result, err := h.Service.DeleteAsset(r.Context(), session, assetID)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	writeSideEffects(w, result.SideEffects)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "asset deleted successfully",
		"id":      result.AssetID,
	})
}

// assetIDParam parses the path id. A malformed id becomes uuid.Nil, which
// never matches a stored asset.
func assetIDParam(r *http.Request) uuid.UUID {
	assetID, err := uuid.Parse(chi.URLParam(r, "assetId"))
	if err != nil {
		return uuid.Nil
	}
	return assetID
}

func writeSideEffects(w http.ResponseWriter, effects []models.SideEffect) {
	if failed := models.FailedSideEffects(effects); len(failed) > 0 {
		w.Header().Set(SideEffectsHeader, strings.Join(failed, ","))
	}
}
