package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/promptvault/prompt-library/internal/core/ports"
)

// Session guards routes that require an authenticated session. It validates
// the bearer token, then checks the session store itself so tokens issued
// before a logout stop working. IsAuthenticated hydrates the store from its
// snapshot on first use. Claims are injected into the request context.
func Session(jwtSecret string, session ports.SessionService) echo.MiddlewareFunc {
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

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if !session.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}

			c.Set("principal_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("name", claims["name"])

			return next(c)
		}
	}
}

// Guest rejects guest-only routes (login, register) when a session is already
// active, the API rendition of redirecting an authenticated user away.
func Guest(session ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if session.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusConflict, "already authenticated")
			}
			return next(c)
		}
	}
}
