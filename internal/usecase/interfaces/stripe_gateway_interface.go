package interfaces

import (
	"context"

	"invoicesync/internal/domain/entities"
)

// IStripeGateway abstracts the Stripe API surface the sync engine needs.
//
// Fetch, list and update calls are retried with backoff inside the gateway;
// signature verification is a direct accept/reject. GetInvoice distinguishes
// ErrNotFound from transient failures.
type IStripeGateway interface {
	GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error)
	ListRecentInvoices(ctx context.Context, daysBack int) ([]entities.Invoice, error)
	UpdateInvoiceMemo(ctx context.Context, invoiceID, memo string) error
	ParseWebhookEvent(payload []byte, signature string) (entities.StripeEvent, error)
}
