package api

import (
	"encoding/json"
	"errors"
)

// DefaultErrorMessage is used when a failed response carries no readable message
const DefaultErrorMessage = "Request failed"

// Error is the single failure type produced by the client. Message is always
// human readable and safe to show to the user.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Message extracts the user-facing text from any error returned by Client
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func errorMessage(body []byte) string {
	var payload struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return DefaultErrorMessage
	}
	if s, ok := payload.Error.(string); ok && s != "" {
		return s
	}
	if s, ok := payload.Message.(string); ok && s != "" {
		return s
	}
	return DefaultErrorMessage
}
