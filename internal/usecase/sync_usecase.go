package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/logger"
	"invoicesync/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// StripeInvoiceIDPrefix is Stripe's invoice id convention. A Notion page
// whose embedded id does not carry it cannot be synced back.
const StripeInvoiceIDPrefix = "in_"

var (
	ErrInvalidStripeInvoiceID = errors.New("invalid stripe invoice id")
	ErrMissingStripeLink      = errors.New("notion invoice has no linked stripe id")
)

// Stats reports per-run counters for a batch reconciliation pass. Deleted
// stays at zero for batch runs: deletion reconciliation across the whole
// collection is out of scope, only individual deletion events archive pages.
type Stats struct {
	Total     int `json:"total"`
	Synced    int `json:"synced"`
	Failed    int `json:"failed"`
	Unchanged int `json:"unchanged"`
	Deleted   int `json:"deleted"`
}

// ISyncUseCase is the bidirectional reconciliation engine.
//
// Operations report outcomes as success flags, never as faults: a single
// record's failure is logged and counted, and the boundary layer decides
// what external signal a false turns into.

type ISyncUseCase interface {
	SyncToNotion(ctx context.Context, inv entities.Invoice) (bool, string)
	SyncToStripe(ctx context.Context, notionPageID string) bool
	RunBackgroundSync(ctx context.Context, daysBack int) Stats
	SyncRecentNotionEdits(ctx context.Context, window time.Duration) int
}

type SyncUseCase struct {
	stripe interfaces.IStripeGateway
	notion interfaces.INotionGateway
	locks  *keyedLock
	now    func() time.Time
	log    zerolog.Logger
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(stripe interfaces.IStripeGateway, notion interfaces.INotionGateway) *SyncUseCase {
	return &SyncUseCase{
		stripe: stripe,
		notion: notion,
		locks:  newKeyedLock(),
		now:    time.Now,
		log:    logger.WithComponent("sync"),
	}
}

// SyncToNotion transfers one invoice from Stripe to Notion. A Deleted status
// archives the counterpart and never creates anything; otherwise the
// counterpart is updated in place when found and created when not. Returns
// the success flag and the Notion page id of the resulting record.
//
// Attempts for the same Stripe invoice are serialized: the webhook driver
// and the scheduler share this engine, and an unserialized check-then-act
// pair could create duplicate pages.
func (u *SyncUseCase) SyncToNotion(ctx context.Context, inv entities.Invoice) (bool, string) {
	if inv.ID == "" {
		u.log.Warn().Err(ErrInvalidStripeInvoiceID).Msg("sync to notion refused: empty stripe invoice id")
		return false, ""
	}
	if u.notion == nil {
		u.log.Error().Msg("notion gateway not configured")
		return false, ""
	}

	mu := u.locks.get(inv.ID)
	mu.Lock()
	defer mu.Unlock()

	if inv.Status == entities.StatusDeleted {
		return u.archiveNotionCounterpart(ctx, inv.ID), ""
	}

	inv.LastSyncedAt = u.now().UTC()

	existing, err := u.notion.QueryInvoiceByStripeID(ctx, inv.ID)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		pageID, err := u.notion.CreateInvoice(ctx, inv)
		if err != nil {
			u.log.Error().Err(err).Str("stripe_id", inv.ID).Msg("failed to create invoice in notion")
			return false, ""
		}
		u.log.Info().Str("stripe_id", inv.ID).Str("notion_id", pageID).Msg("created invoice in notion")
		return true, pageID
	case err != nil:
		u.log.Error().Err(err).Str("stripe_id", inv.ID).Msg("counterpart lookup failed")
		return false, ""
	}

	if err := u.notion.UpdateInvoice(ctx, existing.NotionID, inv); err != nil {
		u.log.Error().Err(err).Str("stripe_id", inv.ID).Str("notion_id", existing.NotionID).Msg("failed to update invoice in notion")
		return false, ""
	}
	u.log.Info().Str("stripe_id", inv.ID).Str("notion_id", existing.NotionID).Msg("updated invoice in notion")
	return true, existing.NotionID
}

// archiveNotionCounterpart handles the terminal deletion signal. A missing
// counterpart is reported as a failed archival, not a reason to create one.
func (u *SyncUseCase) archiveNotionCounterpart(ctx context.Context, stripeID string) bool {
	existing, err := u.notion.QueryInvoiceByStripeID(ctx, stripeID)
	if errors.Is(err, interfaces.ErrNotFound) {
		u.log.Warn().Str("stripe_id", stripeID).Msg("deleted invoice has no notion counterpart, nothing to archive")
		return false
	}
	if err != nil {
		u.log.Error().Err(err).Str("stripe_id", stripeID).Msg("counterpart lookup failed for deletion")
		return false
	}

	if err := u.notion.ArchiveInvoice(ctx, existing.NotionID); err != nil {
		u.log.Error().Err(err).Str("stripe_id", stripeID).Str("notion_id", existing.NotionID).Msg("failed to archive invoice in notion")
		return false
	}
	u.log.Info().Str("stripe_id", stripeID).Str("notion_id", existing.NotionID).Msg("archived deleted invoice in notion")
	return true
}

// SyncToStripe transfers the billing period of a Notion invoice page into
// the linked Stripe invoice's memo. The page must exist (it was just edited)
// and must carry a well-formed Stripe invoice id; this direction never
// creates Stripe records. A page without a billing period is a no-op
// success.
func (u *SyncUseCase) SyncToStripe(ctx context.Context, notionPageID string) bool {
	if u.notion == nil || u.stripe == nil {
		u.log.Error().Msg("gateways not configured")
		return false
	}

	notionInv, err := u.notion.GetInvoiceByPageID(ctx, notionPageID)
	if err != nil {
		u.log.Error().Err(err).Str("notion_id", notionPageID).Msg("failed to retrieve notion invoice")
		return false
	}

	if notionInv.StripeID == "" {
		u.log.Warn().Err(ErrMissingStripeLink).Str("notion_id", notionPageID).Msg("notion invoice has no stripe link, cannot sync back")
		return false
	}
	if !strings.HasPrefix(notionInv.StripeID, StripeInvoiceIDPrefix) {
		u.log.Warn().Err(ErrInvalidStripeInvoiceID).Str("notion_id", notionPageID).Str("stripe_id", notionInv.StripeID).Msg("refusing sync: id does not match stripe invoice format")
		return false
	}

	mu := u.locks.get(notionInv.StripeID)
	mu.Lock()
	defer mu.Unlock()

	stripeInv, err := u.stripe.GetInvoice(ctx, notionInv.StripeID)
	if err != nil {
		u.log.Error().Err(err).Str("stripe_id", notionInv.StripeID).Msg("failed to retrieve stripe invoice")
		return false
	}

	if notionInv.BillingPeriodStart == nil {
		u.log.Info().Str("notion_id", notionPageID).Msg("no billing period on notion invoice, nothing to sync")
		return true
	}

	memo := entities.MergeBillingPeriod(stripeInv.Memo, *notionInv.BillingPeriodStart, notionInv.BillingPeriodEnd)
	if memo == stripeInv.Memo {
		u.log.Info().Str("stripe_id", notionInv.StripeID).Msg("memo already carries this billing period, skipping write")
		return true
	}

	if err := u.stripe.UpdateInvoiceMemo(ctx, notionInv.StripeID, memo); err != nil {
		u.log.Error().Err(err).Str("stripe_id", notionInv.StripeID).Msg("failed to update stripe memo")
		return false
	}
	u.log.Info().Str("stripe_id", notionInv.StripeID).Str("notion_id", notionPageID).Msg("synced billing period to stripe memo")
	return true
}

// RunBackgroundSync reconciles every Stripe invoice modified within the
// trailing window into Notion, skipping counterparts that are newer than
// their source. One record's failure never aborts the run.
func (u *SyncUseCase) RunBackgroundSync(ctx context.Context, daysBack int) Stats {
	stats := Stats{}
	u.log.Info().Int("days_back", daysBack).Msg("starting background sync")

	invoices, err := u.stripe.ListRecentInvoices(ctx, daysBack)
	if err != nil {
		u.log.Error().Err(err).Msg("failed to list recent stripe invoices")
		return stats
	}
	stats.Total = len(invoices)

	for _, inv := range invoices {
		existing, err := u.notion.QueryInvoiceByStripeID(ctx, inv.ID)
		switch {
		case err == nil:
			if !shouldTransfer(inv, existing) {
				stats.Unchanged++
				continue
			}
		case errors.Is(err, interfaces.ErrNotFound):
			// No counterpart: always transfer, which creates it.
		default:
			// A transient lookup failure must not turn into a blind create;
			// that is how duplicate counterparts happen.
			u.log.Error().Err(err).Str("stripe_id", inv.ID).Msg("counterpart lookup failed during batch")
			stats.Failed++
			continue
		}

		if ok, _ := u.SyncToNotion(ctx, inv); ok {
			stats.Synced++
		} else {
			stats.Failed++
		}
	}

	u.log.Info().
		Int("total", stats.Total).
		Int("synced", stats.Synced).
		Int("failed", stats.Failed).
		Int("unchanged", stats.Unchanged).
		Int("deleted", stats.Deleted).
		Msg("background sync completed")
	return stats
}

// SyncRecentNotionEdits finds Notion invoice pages edited within the window
// and syncs each one carrying a billing period and a Stripe link back to
// Stripe. Returns the number of successful syncs.
func (u *SyncUseCase) SyncRecentNotionEdits(ctx context.Context, window time.Duration) int {
	invoices, err := u.notion.ListRecentlyEdited(ctx, window)
	if err != nil {
		u.log.Error().Err(err).Msg("failed to list recently edited notion invoices")
		return 0
	}

	synced := 0
	for _, n := range invoices {
		if n.StripeID == "" || n.BillingPeriodStart == nil {
			u.log.Debug().Str("notion_id", n.NotionID).Msg("skipping notion invoice without billing period or stripe link")
			continue
		}
		if u.SyncToStripe(ctx, n.NotionID) {
			synced++
		}
	}

	u.log.Info().Int("count", len(invoices)).Int("synced", synced).Msg("notion to stripe billing period sweep completed")
	return synced
}
