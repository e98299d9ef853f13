package model

import (
	"strings"
	"time"
)

type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// ParseInvoiceStatus normalizes input.
// Returns (value, true) if valid; otherwise (pending, false).
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "paid":
		return StatusPaid, true
	default:
		return StatusPending, false
	}
}

// Invoice is the DB entity persisted in the invoices table.
// Amount is an integer count of cents; the dollars-to-cents conversion
// happens once at the form boundary and is never reversed here.
type Invoice struct {
	ID         string        `db:"id"`
	CustomerID string        `db:"customer_id"`
	Amount     int64         `db:"amount"` // cents
	Status     InvoiceStatus `db:"status"` // pending|paid
	Date       time.Time     `db:"date"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

// InvoiceRow is the listing projection joined with the customer.
type InvoiceRow struct {
	ID            string        `db:"id" json:"id"`
	CustomerName  string        `db:"customer_name" json:"customer_name"`
	CustomerEmail string        `db:"customer_email" json:"customer_email"`
	Amount        int64         `db:"amount" json:"amount"`
	Status        InvoiceStatus `db:"status" json:"status"`
	Date          time.Time     `db:"date" json:"date"`
}

// Summary aggregates the dashboard numbers in one struct.
type Summary struct {
	InvoiceCount  int64 `db:"invoice_count" json:"invoice_count"`
	CustomerCount int64 `db:"customer_count" json:"customer_count"`
	PaidTotal     int64 `db:"paid_total" json:"paid_total"`       // cents
	PendingTotal  int64 `db:"pending_total" json:"pending_total"` // cents
}
