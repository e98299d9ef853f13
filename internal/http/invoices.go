package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"invoicing-backend/internal/action"
	"invoicing-backend/internal/cache"
	"invoicing-backend/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const listPageSize = 10

// writeResult maps an action.Result to HTTP. The redirect happens here,
// after the action has fully returned: it can never be swallowed by the
// action's own error handling.
func writeResult(c echo.Context, res action.Result) error {
	if res.Redirect != "" {
		return c.Redirect(http.StatusSeeOther, res.Redirect)
	}
	if res.FieldErrors != nil {
		return c.JSON(http.StatusBadRequest, res)
	}
	if res.Err != nil {
		return c.JSON(http.StatusInternalServerError, res)
	}
	return c.JSON(http.StatusOK, res)
}

func createInvoiceHandler(actions *action.Invoices) echo.HandlerFunc {
	return func(c echo.Context) error {
		values, err := c.FormParams()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}
		return writeResult(c, actions.Create(c.Request().Context(), values))
	}
}

func updateInvoiceHandler(actions *action.Invoices) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if id == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing id"})
		}
		values, err := c.FormParams()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}
		return writeResult(c, actions.Update(c.Request().Context(), id, values))
	}
}

func deleteInvoiceHandler(actions *action.Invoices) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if id == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing id"})
		}
		return writeResult(c, actions.Delete(c.Request().Context(), id))
	}
}

// listInvoicesHandler serves the invoice listing through the redis cache.
// The cache key is the full request URI so each query/page combination is
// cached independently; mutations invalidate the whole listing path.
func listInvoicesHandler(repo repository.InvoicesRepository, listing *cache.Listing) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().URL.RequestURI()
		if b, ok := listing.Get(c.Request().Context(), key); ok {
			return c.JSONBlob(http.StatusOK, b)
		}

		page, _ := strconv.Atoi(c.QueryParam("page"))
		if page < 1 {
			page = 1
		}
		q := c.QueryParam("q")

		rows, err := repo.List(c.Request().Context(), q, listPageSize, (page-1)*listPageSize)
		if err != nil {
			log.Errorf("list invoices failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
		}

		payload, err := json.Marshal(map[string]any{"invoices": rows, "page": page})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "encode error"})
		}
		listing.Set(c.Request().Context(), key, payload)

		return c.JSONBlob(http.StatusOK, payload)
	}
}

func summaryHandler(repo repository.InvoicesRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := repo.Summary(c.Request().Context())
		if err != nil {
			log.Errorf("invoice summary failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
		}
		return c.JSON(http.StatusOK, s)
	}
}

func listCustomersHandler(repo repository.CustomersRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		customers, err := repo.List(c.Request().Context())
		if err != nil {
			log.Errorf("list customers failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
		}
		return c.JSON(http.StatusOK, map[string]any{"customers": customers})
	}
}
