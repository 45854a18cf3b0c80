// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"go.uber.org/zap"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error to its HTTP status and renders the
// standard error envelope
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	appErr := apperrors.Wrap(err, "request failed")
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("Request error",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.Error(appErr),
		)
	} else {
		logger.Warn("Request rejected",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.String("details", appErr.Details),
		)
	}

	writeJSON(w, logger, appErr.StatusCode(), apperrors.ToErrorResponse(appErr, requestID))
}

// decodeJSON decodes a request body, rejecting unknown garbage early
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewBadRequestError("invalid JSON body")
	}
	return nil
}
