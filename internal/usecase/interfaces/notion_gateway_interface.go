package interfaces

import (
	"context"
	"time"

	"invoicesync/internal/domain/entities"
)

// INotionGateway abstracts the Notion workspace holding the invoices
// database.
//
// QueryInvoiceByStripeID resolves the counterpart of a Stripe invoice; the
// database has no Stripe-id field, so resolution scans the collection and
// matches the id embedded in each page's Stripe link URL. Both lookups
// return ErrNotFound for an explicit miss. Page ids are normalized to
// Notion's canonical hyphenated form inside the gateway.
type INotionGateway interface {
	QueryInvoiceByStripeID(ctx context.Context, stripeID string) (*entities.NotionInvoice, error)
	GetInvoiceByPageID(ctx context.Context, pageID string) (*entities.NotionInvoice, error)

	// CreateInvoice creates a page in the invoices database. When a template
	// page is configured its content blocks are cloned onto the new page; a
	// cloning failure degrades to the plain created page.
	CreateInvoice(ctx context.Context, inv entities.Invoice) (string, error)
	UpdateInvoice(ctx context.Context, pageID string, inv entities.Invoice) error
	ArchiveInvoice(ctx context.Context, pageID string) error

	ListRecentlyEdited(ctx context.Context, window time.Duration) ([]entities.NotionInvoice, error)
}
