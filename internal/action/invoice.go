package action

import (
	"context"
	"net/url"
	"time"

	"invoicing-backend/internal/form"
	"invoicing-backend/internal/metrics"
	"invoicing-backend/internal/model"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/util"

	"go.uber.org/zap"
)

// InvoicesPath is the listing view every successful mutation invalidates
// and create/update redirect to.
const InvoicesPath = "/invoices"

const (
	msgCreateMissing = "Missing Fields. Failed to Create Invoice."
	msgCreateDB      = "Database Error: Failed to Create Invoice."
	msgUpdateMissing = "Missing Fields. Failed to Update Invoice."
	msgUpdateDB      = "Database Error: Failed to Update Invoice."
	msgDeleteDB      = "Database Error: Failed to Delete Invoice."
	msgDeleted       = "Deleted Invoice."
)

type Invoices struct {
	repo    repository.InvoicesRepository
	listing ListingInvalidator
	log     *zap.Logger
	now     func() time.Time
	newID   func() string
}

func NewInvoices(repo repository.InvoicesRepository, listing ListingInvalidator, log *zap.Logger) *Invoices {
	if log == nil {
		log = zap.NewNop()
	}
	return &Invoices{
		repo:    repo,
		listing: listing,
		log:     log,
		now:     time.Now,
		newID:   util.New,
	}
}

// Create validates the submission and inserts a new invoice stamped with
// the current date. Validation failure skips the database entirely.
func (a *Invoices) Create(ctx context.Context, values url.Values) Result {
	in, fieldErrs := form.ParseInvoice(values)
	if fieldErrs != nil {
		metrics.InvoiceMutationsTotal.WithLabelValues("create", "invalid").Inc()
		return Result{FieldErrors: fieldErrs, Message: msgCreateMissing}
	}

	inv := model.Invoice{
		ID:         a.newID(),
		CustomerID: in.CustomerID,
		Amount:     in.AmountCents,
		Status:     in.Status,
		Date:       a.now(),
	}
	if err := a.repo.Insert(ctx, inv); err != nil {
		a.log.Error("insert invoice failed", zap.String("customer_id", in.CustomerID), zap.Error(err))
		metrics.InvoiceMutationsTotal.WithLabelValues("create", "db_error").Inc()
		return Result{Message: msgCreateDB, Err: err}
	}

	metrics.InvoiceMutationsTotal.WithLabelValues("create", "ok").Inc()
	a.listing.Invalidate(ctx, InvoicesPath)
	return Result{Redirect: InvoicesPath}
}

// Update runs the same tolerant validation as Create, then overwrites the
// row's mutable fields. The id and original date are never touched.
func (a *Invoices) Update(ctx context.Context, id string, values url.Values) Result {
	in, fieldErrs := form.ParseInvoice(values)
	if fieldErrs != nil {
		metrics.InvoiceMutationsTotal.WithLabelValues("update", "invalid").Inc()
		return Result{FieldErrors: fieldErrs, Message: msgUpdateMissing}
	}

	if err := a.repo.Update(ctx, id, in.CustomerID, in.AmountCents, in.Status); err != nil {
		a.log.Error("update invoice failed", zap.String("id", id), zap.Error(err))
		metrics.InvoiceMutationsTotal.WithLabelValues("update", "db_error").Inc()
		return Result{Message: msgUpdateDB, Err: err}
	}

	metrics.InvoiceMutationsTotal.WithLabelValues("update", "ok").Inc()
	a.listing.Invalidate(ctx, InvoicesPath)
	return Result{Redirect: InvoicesPath}
}

// Delete removes the invoice and reports back in place; the caller stays
// on the listing page, so no redirect.
func (a *Invoices) Delete(ctx context.Context, id string) Result {
	if err := a.repo.Delete(ctx, id); err != nil {
		a.log.Error("delete invoice failed", zap.String("id", id), zap.Error(err))
		metrics.InvoiceMutationsTotal.WithLabelValues("delete", "db_error").Inc()
		return Result{Message: msgDeleteDB, Err: err}
	}

	metrics.InvoiceMutationsTotal.WithLabelValues("delete", "ok").Inc()
	a.listing.Invalidate(ctx, InvoicesPath)
	return Result{Message: msgDeleted}
}
