package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/api/middleware"
	"github.com/lia-nails/salon-system/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call:
//   - a missing principal means the route was wired without the guard chain,
//   - a staff principal without an employee id is structurally valid JWT-wise
//     but operationally unusable for agenda scoping — reject with 401.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if !ok || principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	if principal.Role == domain.RoleStaff && principal.EmployeeID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token missing employee identity")
	}

	return principal, nil
}
