package directoryservice

import (
	"assettracker/providers"
	"assettracker/utils"
	"net/http"
)

type DirectoryHandler struct {
	Service        DirectoryService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewDirectoryHandler(service DirectoryService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *DirectoryHandler {
	return &DirectoryHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func (h *DirectoryHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	session := h.AuthMiddleware.GetSessionFromContext(r)

	members, err := h.Service.ListMembers(r.Context(), session)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, members)
}
