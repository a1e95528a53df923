package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// responseBuffers holds encode buffers sized for a typical listings page
var responseBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 4096)) },
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := responseBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		responseBuffers.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	// messages such as "quantity <= 0" go out as written
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError maps the domain error classes to a status and a safe message.
// Validation style errors keep their text after the class prefix.
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentials
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, detail(err, ErrMsgNotFound)
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, detail(err, ErrMsgConflict)
	case errors.Is(err, domain.ErrLimitExceeded):
		return http.StatusUnprocessableEntity, detail(err, ErrMsgLimitExceeded)
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, detail(err, ErrMsgInsufficientStock)
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusBadRequest, detail(err, ErrMsgInvalidState)
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// detail returns the innermost domain message, e.g. "character not found".
// Anything wrapped around it by services may carry internals and is dropped.
func detail(err error, fallback string) string {
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 && i+2 < len(msg) {
		msg = msg[i+2:]
	}
	if msg == "" || len(msg) > 200 {
		return fallback
	}
	return msg
}

var knownErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrCharacterNotFound,
	domain.ErrItemNotFound,
	domain.ErrInventoryNotFound,
	domain.ErrSessionNotFound,
	domain.ErrListingNotFound,
	domain.ErrRealmNotFound,
	domain.ErrAlreadyAfk,
	domain.ErrUsernameTaken,
	domain.ErrDurationExceedsTier,
	domain.ErrInsufficientQuantity,
	domain.ErrNonPositiveQuantity,
	domain.ErrCannotCreateEmpty,
	domain.ErrInvalidPrice,
	domain.ErrTotalTooLarge,
	domain.ErrInvalidDuration,
	domain.ErrLevelTooLow,
	domain.ErrInvalidRealm,
	domain.ErrInvalidMembershipType,
}

// respondServiceError logs err with the operation name and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
