package reportservice

import (
	"assettracker/providers"
	"assettracker/utils"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type ReportHandler struct {
	Service        ReportService
	AuthMiddleware providers.AuthMiddlewareService
	Logger         providers.ZapLoggerProvider
}

func NewReportHandler(service ReportService, auth providers.AuthMiddlewareService, logger providers.ZapLoggerProvider) *ReportHandler {
	return &ReportHandler{
		Service:        service,
		AuthMiddleware: auth,
		Logger:         logger,
	}
}

func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	session := h.AuthMiddleware.GetSessionFromContext(r)

	var req GenerateReportReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		h.Logger.GetLogger().Debug("failed to parse report request", zap.Error(err))
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	file, err := h.Service.GenerateReport(r.Context(), session, req)
	if err != nil {
		utils.RespondAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		h.Logger.GetLogger().Warn("failed to write report body", zap.String("filename", file.Filename), zap.Error(err))
	}
}
