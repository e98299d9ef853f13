package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoicing-backend/internal/auth"
	"invoicing-backend/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runSession(t *testing.T, tokens *auth.TokenManager, cookie *http.Cookie) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID string
	var called bool
	handler := SessionMiddleware(tokens)(func(c echo.Context) error {
		called = true
		gotID, _ = UserIDFromCtx(c)
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return rec, gotID, called
}

func TestSessionMiddleware_ValidCookie(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Issue(&model.User{ID: "U1"})
	assert.NoError(t, err)

	rec, userID, called := runSession(t, tokens, &http.Cookie{Name: SessionCookie, Value: token})

	assert.True(t, called)
	assert.Equal(t, "U1", userID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddleware_MissingCookie(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	rec, _, called := runSession(t, tokens, nil)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionMiddleware_BadToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	rec, _, called := runSession(t, tokens, &http.Cookie{Name: SessionCookie, Value: "tampered"})

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
