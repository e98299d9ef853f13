package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"invoicing-backend/internal/action"
	"invoicing-backend/internal/form"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func record(t *testing.T, res action.Result) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(url.Values{}.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, writeResult(c, res))
	return rec
}

func TestWriteResult_Redirect(t *testing.T) {
	rec := record(t, action.Result{Redirect: "/invoices"})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/invoices", rec.Header().Get(echo.HeaderLocation))
}

func TestWriteResult_FieldErrors(t *testing.T) {
	rec := record(t, action.Result{
		FieldErrors: form.FieldErrors{"amount": {"Please enter an amount greater than $0."}},
		Message:     "Missing Fields. Failed to Create Invoice.",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount"`)
	assert.Contains(t, rec.Body.String(), "Missing Fields. Failed to Create Invoice.")
}

func TestWriteResult_PersistenceFailure(t *testing.T) {
	rec := record(t, action.Result{
		Message: "Database Error: Failed to Create Invoice.",
		Err:     assert.AnError,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database Error: Failed to Create Invoice.")
	// the underlying error text stays server-side
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestWriteResult_InPlaceMessage(t *testing.T) {
	rec := record(t, action.Result{Message: "Deleted Invoice."})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deleted Invoice.")
}
