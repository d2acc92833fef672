package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind classifies an API error so callers can switch exhaustively
// instead of probing nested optional fields.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindAuth       Kind = "auth"
	KindUnknown    Kind = "unknown"
)

// Error is the single error type surfaced by every client call
type Error struct {
	Kind    Kind
	Message string // server-provided message, may be empty
	Status  int    // HTTP status, 0 for transport failures
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%s)", e.Message, e.Kind)
	}
	return fmt.Sprintf("api: %s error (status %d)", e.Kind, e.Status)
}

// MessageOr returns the server message, or fallback when the payload
// carried none.
func (e *Error) MessageOr(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// IsAuth reports whether err is an authentication failure
func IsAuth(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == KindAuth
}

// errorBody matches the two error envelopes the platform emits:
// {"error": "..."} on auth routes and {"message": "..."} elsewhere.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// transportError wraps a failure that never produced an HTTP response
func transportError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error()}
}

// statusError converts a non-2xx response into a kinded Error
func statusError(status int, body []byte) *Error {
	var payload errorBody
	_ = json.Unmarshal(body, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}

	kind := KindUnknown
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		kind = KindValidation
	}

	return &Error{Kind: kind, Message: msg, Status: status}
}
