package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"roommate_server/logging"
	"roommate_server/models"
)

// writeJSON writes payload with the given status as JSON
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logging.Error().Err(err).Msg("failed to encode response")
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// statusFor maps a service error kind to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError translates a service error into a JSON response under
// key. Causes are logged and never sent to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, key string) {
	status := statusFor(err)
	msg := models.MsgInternal

	var appErr *models.Error
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	logger := logging.Ctx(r.Context())
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		logger.Debug().Int("status", status).Str("reason", msg).Msg("request rejected")
	}

	writeJSON(w, status, map[string]string{key: msg})
}

// decodeRequest decodes a JSON body into req and checks its required fields
func decodeRequest(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return models.BadRequest(models.MsgInvalidPayload)
	}
	return validateRequest(req)
}
