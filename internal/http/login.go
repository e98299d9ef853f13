package http

import (
	"net/http"
	"time"

	"invoicing-backend/internal/action"
	"invoicing-backend/internal/auth"
	"invoicing-backend/internal/http/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func loginHandler(sessions *action.Sessions, tokens *auth.TokenManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		values, err := c.FormParams()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}

		user, msg, err := sessions.Authenticate(c.Request().Context(), values)
		if err != nil {
			// not an authentication failure; let echo's error handling take it
			log.Errorf("authenticate failed unexpectedly: %v", err)
			return err
		}
		if msg != "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": msg})
		}

		token, err := tokens.Issue(user)
		if err != nil {
			return err
		}
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(tokens.TTL()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return c.Redirect(http.StatusSeeOther, action.InvoicesPath)
	}
}

func logoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		return c.Redirect(http.StatusSeeOther, "/login")
	}
}
