package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/razasalaar/workshop-manager/internal/apperr"
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func JSONError(w http.ResponseWriter, status int, msg string, details interface{}) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// Error maps a domain error onto an HTTP status and body. Unclassified and
// persistence errors are reported without internal detail.
func Error(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		JSONError(w, http.StatusBadRequest, err.Error(), nil)
	case apperr.KindUnauthorized:
		JSONError(w, http.StatusUnauthorized, err.Error(), nil)
	case apperr.KindNotFound:
		JSONError(w, http.StatusNotFound, err.Error(), nil)
	case apperr.KindConflict:
		JSONError(w, http.StatusConflict, err.Error(), nil)
	case apperr.KindInsufficientStock:
		JSONError(w, http.StatusConflict, "InsufficientStock", apperr.DetailsOf(err))
	default:
		JSONError(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// Decode parses a JSON request body, rejecting unknown fields.
func Decode(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
