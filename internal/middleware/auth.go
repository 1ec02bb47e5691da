package middleware // reusable HTTP middleware for the API

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/occupancy-tracker/internal/session"
	"github.com/classtrack/occupancy-tracker/internal/utils"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// AccountIDKey is the echo context key under which the authenticated
// account id (uint64) is stored for handlers.
const AccountIDKey = "account_id"

// Auth returns a middleware that authenticates a request either by the
// opaque session cookie (browser clients) or by a Bearer access token
// (API clients). On success the account id is stored in the context
// under AccountIDKey; otherwise the request is rejected with 401 and
// the uniform {"error": "Unauthorized"} body required by the seat
// update contract.
func Auth(store session.Store, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Cookie first: the browser flow.
			if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
				id, err := store.Get(c.Request().Context(), ck.Value)
				if err == nil {
					c.Set(AccountIDKey, id)
					return next(c)
				}
				if !errors.Is(err, session.ErrNotFound) {
					return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
				}
			}

			// Bearer token second: stateless API clients.
			if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				raw := strings.TrimPrefix(auth, "Bearer ")
				if id, err := utils.ParseAccessToken(jwtSecret, raw); err == nil {
					c.Set(AccountIDKey, id)
					return next(c)
				}
			}

			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}
	}
}

// AccountID extracts the authenticated account id stored by Auth.
// It returns 0 when the request was not authenticated.
func AccountID(c echo.Context) uint64 {
	if v, ok := c.Get(AccountIDKey).(uint64); ok {
		return v
	}
	return 0
}
