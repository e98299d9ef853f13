// Package action sequences the invoice form pipelines: validate, persist,
// invalidate the listing cache, then hand a navigation outcome back to the
// HTTP layer. Failures come back as values; nothing here panics or uses
// control-flow tricks for redirects.
package action

import (
	"context"

	"invoicing-backend/internal/form"
)

// Result is what every invoice action hands back to the HTTP layer.
// Exactly one shape is populated per outcome:
//   - validation failure: FieldErrors + Message
//   - persistence failure: Message + Err
//   - success with navigation: Redirect
//   - success in place (delete): Message
//
// Err carries the underlying persistence error for logging and status-code
// mapping only; its text never reaches the caller.
type Result struct {
	FieldErrors form.FieldErrors `json:"errors,omitempty"`
	Message     string           `json:"message,omitempty"`
	Redirect    string           `json:"-"`
	Err         error            `json:"-"`
}

// ListingInvalidator marks a cached listing path stale after a mutation.
// Implementations must not fail the mutation: the call is fire-and-forget.
type ListingInvalidator interface {
	Invalidate(ctx context.Context, path string)
}
