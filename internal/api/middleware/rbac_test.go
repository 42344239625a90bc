package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

func contextWithPrincipal(e *echo.Echo, role string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(PrincipalKey, &domain.Principal{UserID: "user_1", Role: role})
	return c
}

func TestRequireRoles_Allows(t *testing.T) {
	e := echo.New()
	c := contextWithPrincipal(e, domain.RoleAdmin)

	called := false
	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireRoles_Forbids(t *testing.T) {
	e := echo.New()
	c := contextWithPrincipal(e, domain.RoleStaff)

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusForbidden, "required roles [admin]")
	assertHTTPError(t, err, http.StatusForbidden, "current role staff")
}

func TestRequireRoles_OpenWhenUndeclared(t *testing.T) {
	e := echo.New()
	c := contextWithPrincipal(e, domain.RoleStaff)

	called := false
	handler := RequireRoles()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("undeclared role set should admit any authenticated principal")
	}
}

func TestRequireRoles_MissingPrincipalIsServerDefect(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusInternalServerError, "without authentication")
}
