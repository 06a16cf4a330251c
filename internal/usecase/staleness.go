package usecase

import "invoicesync/internal/domain/entities"

// shouldTransfer is the last-write-wins staleness gate for a Stripe→Notion
// transfer. No counterpart means transfer (it will be created). When both
// last-modified instants are known the transfer is skipped only if the
// counterpart is strictly newer, compared in UTC so the instants are never
// mixed across zones. A missing timestamp on either side defaults to
// transferring: ambiguity must not silently suppress updates.
func shouldTransfer(source entities.Invoice, counterpart *entities.NotionInvoice) bool {
	if counterpart == nil {
		return true
	}
	if source.StripeUpdatedAt.IsZero() || counterpart.LastEditedTime.IsZero() {
		return true
	}
	return !counterpart.LastEditedTime.UTC().After(source.StripeUpdatedAt.UTC())
}
