package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel classifications for transport outcomes. Callers match with
// errors.Is; the concrete error may carry extra context.
var (
	ErrUnauthorized = errors.New("authentication failed")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
)

// RequestError is the classification for non-2xx statuses that have no
// dedicated sentinel. Detail carries the backend-provided message if the
// body had one.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// errorBody is the backend's error envelope: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// classify maps a non-2xx response to its client-side error kind.
func classify(status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	switch {
	case status == 401:
		if eb.Detail != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, eb.Detail)
		}
		return ErrUnauthorized
	case status == 403:
		return ErrForbidden
	case status == 404:
		return ErrNotFound
	case status >= 500:
		return fmt.Errorf("%w: status %d", ErrServer, status)
	default:
		return &RequestError{Status: status, Detail: eb.Detail}
	}
}
