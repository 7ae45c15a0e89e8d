package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/thevanityindia/vanity-server/internal/model"
)

// Envelope is the uniform response shape. Callers check Success on every
// response; failures carry a human-readable Message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	User    any    `json:"user,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: true, Message: message})
}

// WriteError maps an error onto the envelope. APIError messages are
// surfaced verbatim; anything else becomes a generic internal error.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Status, Envelope{Success: false, Message: apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, Envelope{Success: false, Message: "not found"})
		return
	}

	writeJSON(w, http.StatusInternalServerError, Envelope{Success: false, Message: "internal server error"})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewErrValidation("invalid request body")
	}
	return nil
}
