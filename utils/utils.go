package utils

import (
	"assettracker/models"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondError writes a transport level error whose kind follows the status code.
func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Debug("request failed", zap.Int("status", statusCode), zap.Error(err))
	}
	RespondJSON(w, statusCode, ErrorResponse{Error: kindForStatus(statusCode), Message: message})
}

// RespondAppError maps a service error to its kind and status. Internal
// error text is logged and replaced with a generic message.
func RespondAppError(w http.ResponseWriter, err error) {
	kind, status := models.ErrorKind(err)
	message := models.PublicMessage(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("internal error", zap.Error(err))
		message = "internal server error"
	}
	RespondJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

func kindForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Unauthenticated"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusBadRequest:
		return "InvalidInput"
	default:
		return "InternalError"
	}
}
