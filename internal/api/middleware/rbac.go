package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// RequireRoles enforces a per-route role allow-list. Declaring no roles
// leaves the route open to any authenticated principal. Seeing no principal
// in context means the chain was wired out of order — that is a server
// defect surfaced as a 500, never a silent pass.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalKey).(*domain.Principal)
			if !ok || principal == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "authorization guard ran without authentication")
			}

			if len(allowed) == 0 {
				return next(c)
			}

			if _, ok := allowed[principal.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf(
					"access denied: required roles [%s], current role %s",
					strings.Join(allowedRoles, ", "), principal.Role))
			}
			return next(c)
		}
	}
}
