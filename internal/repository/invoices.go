package repository

import (
	"context"

	"invoicing-backend/internal/model"

	"github.com/jmoiron/sqlx"
)

// InvoicesRepository defines persistence for the invoices table.
// All statements are parameterized; no SQL is built from user input.
type InvoicesRepository interface {
	Insert(ctx context.Context, inv model.Invoice) error
	Update(ctx context.Context, id, customerID string, amountCents int64, status model.InvoiceStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query string, limit, offset int) ([]model.InvoiceRow, error)
	Summary(ctx context.Context) (model.Summary, error)
}

type InvoicesRepositoryImpl struct {
	db *sqlx.DB
}

func NewInvoicesRepository(db *sqlx.DB) *InvoicesRepositoryImpl {
	return &InvoicesRepositoryImpl{db: db}
}

var _ InvoicesRepository = (*InvoicesRepositoryImpl)(nil)

func (r *InvoicesRepositoryImpl) Insert(ctx context.Context, inv model.Invoice) error {
	const q = `
		INSERT INTO invoices
		    (id, customer_id, amount, status, date, created_at, updated_at)
		VALUES
		    (?,  ?,           ?,      ?,      ?,    NOW(),      NOW())
	`
	_, err := r.db.ExecContext(ctx, q,
		inv.ID, inv.CustomerID, inv.Amount, inv.Status.String(), inv.Date,
	)
	return err
}

// Update touches customer_id, amount and status only; id and date are immutable.
func (r *InvoicesRepositoryImpl) Update(ctx context.Context, id, customerID string, amountCents int64, status model.InvoiceStatus) error {
	const q = `
		UPDATE invoices
		   SET customer_id = ?, amount = ?, status = ?, updated_at = NOW()
		 WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, q, customerID, amountCents, status.String(), id)
	return err
}

func (r *InvoicesRepositoryImpl) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	return err
}

// List returns the newest invoices joined with their customer, optionally
// filtered by a case-insensitive match on customer name or email.
func (r *InvoicesRepositoryImpl) List(ctx context.Context, query string, limit, offset int) ([]model.InvoiceRow, error) {
	const q = `
		SELECT i.id,
		       c.name  AS customer_name,
		       c.email AS customer_email,
		       i.amount,
		       i.status,
		       i.date
		  FROM invoices i
		  JOIN customers c ON c.id = i.customer_id
		 WHERE (? = '' OR c.name LIKE ? OR c.email LIKE ?)
		 ORDER BY i.date DESC, i.id DESC
		 LIMIT ? OFFSET ?
	`
	pattern := "%" + query + "%"
	rows := make([]model.InvoiceRow, 0)
	if err := r.db.SelectContext(ctx, &rows, q, query, pattern, pattern, limit, offset); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *InvoicesRepositoryImpl) Summary(ctx context.Context) (model.Summary, error) {
	const q = `
		SELECT (SELECT COUNT(*) FROM invoices)  AS invoice_count,
		       (SELECT COUNT(*) FROM customers) AS customer_count,
		       COALESCE(SUM(CASE WHEN status = 'paid'    THEN amount ELSE 0 END), 0) AS paid_total,
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending_total
		  FROM invoices
	`
	var s model.Summary
	if err := r.db.GetContext(ctx, &s, q); err != nil {
		return model.Summary{}, err
	}
	return s, nil
}
