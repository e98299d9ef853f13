// Package form validates raw invoice submissions. Malformed input is a
// normal outcome reported as field errors, never as a Go error.
package form

import (
	"net/url"
	"strings"

	"invoicing-backend/internal/model"

	"github.com/shopspring/decimal"
)

// FieldErrors maps a form field name to its human-readable messages.
type FieldErrors map[string][]string

// InvoiceInput is a validated submission. Amount is already converted to
// cents; that conversion happens here and nowhere else.
type InvoiceInput struct {
	CustomerID  string
	AmountCents int64
	Status      model.InvoiceStatus
}

const (
	msgCustomer = "Please select a customer."
	msgAmount   = "Please enter an amount greater than $0."
	msgStatus   = "Please select an invoice status."
)

// ParseInvoice validates the customer_id, amount and status fields.
// It returns either the typed input or a non-empty FieldErrors; never both.
func ParseInvoice(values url.Values) (InvoiceInput, FieldErrors) {
	errs := FieldErrors{}

	customerID := strings.TrimSpace(values.Get("customer_id"))
	if customerID == "" {
		errs["customer_id"] = append(errs["customer_id"], msgCustomer)
	}

	cents, ok := parseAmountCents(values.Get("amount"))
	if !ok {
		errs["amount"] = append(errs["amount"], msgAmount)
	}

	status, ok := model.ParseInvoiceStatus(values.Get("status"))
	if !ok {
		errs["status"] = append(errs["status"], msgStatus)
	}

	if len(errs) > 0 {
		return InvoiceInput{}, errs
	}
	return InvoiceInput{
		CustomerID:  customerID,
		AmountCents: cents,
		Status:      status,
	}, nil
}

// parseAmountCents converts a decimal dollar string ("10.50") to cents (1050).
// Rejects non-numeric input, amounts <= 0, sub-cent precision, and cent
// values that do not fit in int64 (IntPart would silently wrap).
func parseAmountCents(raw string) (int64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	if !d.IsPositive() {
		return 0, false
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, false
	}
	if !cents.BigInt().IsInt64() {
		return 0, false
	}
	return cents.IntPart(), true
}
