package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("month: %w", ErrInvalidArgument), CodeBadRequest},
		{fmt.Errorf("entry: %w", ErrNotFound), CodeNotFound},
		{context.DeadlineExceeded, CodeInternal},
	}
	for _, tt := range tests {
		if got := CodeOf(tt.err); got != tt.want {
			t.Errorf("CodeOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestToStatusCode(t *testing.T) {
	tests := map[string]int{
		CodeBadRequest:   http.StatusBadRequest,
		CodeNotFound:     http.StatusNotFound,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeForbidden:    http.StatusForbidden,
		CodeConflict:     http.StatusConflict,
		CodeInternal:     http.StatusInternalServerError,
		"something_else": http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := ToStatusCode(code); got != want {
			t.Errorf("ToStatusCode(%q) = %d, want %d", code, got, want)
		}
	}
}
