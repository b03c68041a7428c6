package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ticketly/ticketing-system/internal/core/ports"
)

// SubjectKey is the echo context key under which the verified token subject
// is stored.
const SubjectKey = "subject"

// TokenVerifier is the slice of the auth service the gate needs.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*ports.TokenClaims, error)
}

// Auth extracts and verifies the bearer token, then injects the subject into
// the request context. It fails closed: a missing or malformed Authorization
// header is 401, a present token that fails verification is 403.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set(SubjectKey, claims.Subject)
			return next(c)
		}
	}
}
