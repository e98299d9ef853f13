package middleware

import (
	"net/http"

	"invoicing-backend/internal/auth"

	echo "github.com/labstack/echo/v4"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// UserIDFromCtx extracts the authenticated user id set by SessionMiddleware.
func UserIDFromCtx(c echo.Context) (string, bool) {
	v := c.Get("user_id")
	id, ok := v.(string)
	return id, ok && id != ""
}

// SessionMiddleware authenticates requests via the session cookie.
// Unauthenticated browsers get sent to the login page.
func SessionMiddleware(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			userID, err := tokens.VerifyToken(cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set("user_id", userID)
			return next(c)
		}
	}
}
