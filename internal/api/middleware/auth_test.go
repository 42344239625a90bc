package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

type stubVerifier struct {
	principal *domain.Principal
	err       error
}

func (v *stubVerifier) Verify(string) (*domain.Principal, error) {
	return v.principal, v.err
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifier := &stubVerifier{principal: &domain.Principal{
		UserID: "user_1", Email: "ana@lianails.com", Role: domain.RoleStaff, EmployeeID: "emp_1",
	}}

	called := false
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		principal, ok := c.Get(PrincipalKey).(*domain.Principal)
		if !ok {
			t.Fatalf("principal not attached")
		}
		if principal.UserID != "user_1" || principal.Role != domain.RoleStaff {
			t.Fatalf("unexpected principal: %+v", principal)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized, "access token required")
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized, "access token required")
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{err: domain.ErrTokenExpired})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized, "token expired")
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubVerifier{err: domain.ErrTokenInvalid})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized, "invalid token")
}

// Expired and invalid tokens must produce different user-facing messages.
func TestAuth_DistinctFailureMessages(t *testing.T) {
	e := echo.New()
	messages := make(map[string]string)

	for name, verifyErr := range map[string]error{
		"expired": domain.ErrTokenExpired,
		"invalid": domain.ErrTokenInvalid,
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer token")
		c := e.NewContext(req, httptest.NewRecorder())

		err := Auth(&stubVerifier{err: verifyErr})(func(c echo.Context) error { return nil })(c)
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("%s: expected HTTPError, got %v", name, err)
		}
		messages[name] = he.Message.(string)
	}

	if messages["expired"] == messages["invalid"] {
		t.Fatalf("expired and invalid tokens share message %q", messages["expired"])
	}
}

func assertHTTPError(t *testing.T, err error, code int, msgPart string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
	if msg, _ := he.Message.(string); !strings.Contains(msg, msgPart) {
		t.Fatalf("expected message containing %q, got %q", msgPart, msg)
	}
}
