// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here.
//
// Every body, success or failure, is the same envelope:
//
//	{ "status": true,  "message": "student added successfully", "data": {...} }
//	{ "status": false, "message": "student not found with id: 9", "data": null }
//	{ "status": false, "message": "validation error", "data": {"email": "..."} }
package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/school-api/internal/service"
	"github.com/aanand-mishra/school-api/internal/validation"
)

// Envelope is the uniform response wrapper.
//
// The json:"..." struct tags control the JSON key names. Data has no
// omitempty: an absent payload is sent as an explicit null.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Messages that are not derived from an error value.
const (
	MsgValidation      = "validation error"
	MsgInternal        = "internal server error"
	MsgTooManyRequests = "too many requests - rate limit exceeded"
)

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// OK wraps data in a successful envelope.
func OK(w http.ResponseWriter, status int, message string, data any) {
	_ = WriteJSON(w, status, Envelope{Status: true, Message: message, Data: data})
}

// Fail writes a failed envelope with no payload.
func Fail(w http.ResponseWriter, status int, message string) {
	_ = WriteJSON(w, status, Envelope{Status: false, Message: message})
}

// ValidationFailed writes 400 with the field → message map as payload.
func ValidationFailed(w http.ResponseWriter, fields validation.Errors) {
	_ = WriteJSON(w, http.StatusBadRequest, Envelope{
		Status:  false,
		Message: MsgValidation,
		Data:    fields,
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// FromError maps err onto the error taxonomy and writes it.
//
//	validation.Errors          → 400, data = field map
//	service.ErrNotFound        → 404
//	service.ErrNoData          → 404
//	service.ErrDuplicateEmail  → 409
//	anything else              → 500, generic message; the cause is logged
//
// ─────────────────────────────────────────────────────────────────────────────
func FromError(w http.ResponseWriter, log *slog.Logger, err error) {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		ValidationFailed(w, fields)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNoData):
		Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail):
		Fail(w, http.StatusConflict, err.Error())
	default:
		if log == nil {
			log = slog.Default()
		}
		log.Error("request failed", slog.String("error", err.Error()))
		Fail(w, http.StatusInternalServerError, MsgInternal)
	}
}
