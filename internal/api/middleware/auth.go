package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lia-nails/salon-system/internal/api/metrics"
	"github.com/lia-nails/salon-system/internal/core/domain"
)

// PrincipalKey is the echo context key the Auth middleware stores the
// authenticated principal under.
const PrincipalKey = "principal"

// TokenVerifier decodes and validates a presented bearer token.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}

// Auth validates the bearer token and injects the principal into context.
// Failure kinds get distinct messages: a missing token, an expired token,
// and anything else (bad signature, garbage) are told apart so clients know
// whether to re-login or fix their request. A bad token is never downgraded
// to an anonymous pass-through.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			principal, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired, please log in again")
				}
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
