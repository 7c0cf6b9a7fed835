package apperrors

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorsMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", Validation("bad input"), CodeValidation, http.StatusBadRequest},
		{"conflict", Conflict("slot taken"), CodeConflict, http.StatusConflict},
		{"invalid transition", InvalidTransition("pending", "complete"), CodeInvalidTransition, http.StatusConflict},
		{"forbidden", Forbidden("not yours"), CodeForbidden, http.StatusForbidden},
		{"not found", NotFound("booking"), CodeNotFound, http.StatusNotFound},
		{"internal", Internal(errors.New("db down")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
			if tt.err.Error() == "" {
				t.Error("Error() returned empty string")
			}
		})
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var appErr *AppError
	if !errors.As(error(err), &appErr) {
		t.Fatal("errors.As should match *AppError")
	}
	if appErr.Code != CodeInternal {
		t.Errorf("Code = %q, want %q", appErr.Code, CodeInternal)
	}
}

func TestInvalidTransitionDetails(t *testing.T) {
	err := InvalidTransition("confirmed", "confirm")

	if err.Details["status"] != "confirmed" {
		t.Errorf("Details[status] = %v, want confirmed", err.Details["status"])
	}
	if err.Details["event"] != "confirm" {
		t.Errorf("Details[event] = %v, want confirm", err.Details["event"])
	}
}

func TestWithDetails(t *testing.T) {
	err := Conflict("overlap").WithDetails(map[string]any{"teacher_id": "abc"})
	if err.Details["teacher_id"] != "abc" {
		t.Errorf("Details[teacher_id] = %v, want abc", err.Details["teacher_id"])
	}
}
