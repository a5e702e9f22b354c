package errors

import (
	stderrors "errors"
	"net/http"
)

var (
	// ErrInvalidArgument marks input-contract violations such as an out-of-range month.
	ErrInvalidArgument = stderrors.New("invalid argument")
	// ErrNotFound marks lookups of records that do not exist or are not owned by the caller.
	ErrNotFound = stderrors.New("not found")
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeBadRequest   = "bad_request"
	CodeNotFound     = "not_found"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeConflict     = "conflict"
	CodeInternal     = "internal"
)

// ErrorResponse represents the canonical error envelope returned by the API.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// ToStatusCode maps a domain specific error code to an HTTP status for default responses.
func ToStatusCode(code string) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf classifies err by the sentinel it wraps.
func CodeOf(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrInvalidArgument):
		return CodeBadRequest
	case stderrors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternal
	}
}
