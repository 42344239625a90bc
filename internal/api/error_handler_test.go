package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, rec.Body.String()
}

func TestHTTPErrorHandler_Conflict(t *testing.T) {
	code, body := renderError(t, domain.ErrEmailInUse)
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	if !strings.Contains(body, "email already in use") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestHTTPErrorHandler_BadRequestGroup(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"weak password", fmt.Errorf("%w: digit required", domain.ErrWeakPassword)},
		{"invalid role", domain.ErrInvalidRole},
		{"employee ref required", domain.ErrEmployeeRefRequired},
		{"employee ref forbidden", domain.ErrEmployeeRefForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := renderError(t, tc.err)
			if code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", code)
			}
		})
	}
}

func TestHTTPErrorHandler_InvalidCredentials(t *testing.T) {
	code, body := renderError(t, domain.ErrInvalidCredentials)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if !strings.Contains(body, "invalid credentials") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestHTTPErrorHandler_InvalidTransition(t *testing.T) {
	code, _ := renderError(t, fmt.Errorf("%w (from pending to completed)", domain.ErrInvalidTransition))
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusForbidden, "access denied: required roles [admin], current role staff"))
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if !strings.Contains(body, "required roles [admin]") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsSanitized(t *testing.T) {
	code, body := renderError(t, fmt.Errorf("connection refused: mongodb://db-internal:27017"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if !strings.Contains(body, "internal server error") {
		t.Fatalf("expected generic message, got: %s", body)
	}
	if strings.Contains(body, "mongodb") || strings.Contains(body, "db-internal") {
		t.Fatalf("internal details must not leak to the client: %s", body)
	}
}
