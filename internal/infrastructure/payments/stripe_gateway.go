package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/logger"
	"invoicesync/internal/retry"
	"invoicesync/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"
)

var (
	ErrMissingStripeAPIKey        = errors.New("missing STRIPE_API_KEY")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
)

// invoiceEventPrefix marks the lifecycle events that carry an invoice
// payload. Every invoice.* event syncs; invoice.deleted is handled
// separately.
const invoiceEventPrefix = "invoice."

// StripeGateway wraps the Stripe API behind the IStripeGateway contract.
// Every network call runs under the injected retry policy; NotFound and
// caller errors short-circuit, rate limits and 5xx retry.
type StripeGateway struct {
	client        *client.API
	webhookSecret string
	policy        retry.Policy
	listLimit     int64
	log           zerolog.Logger
}

var _ interfaces.IStripeGateway = (*StripeGateway)(nil)

func NewStripeGateway(apiKey, webhookSecret string, policy retry.Policy) (*StripeGateway, error) {
	if apiKey == "" {
		return nil, ErrMissingStripeAPIKey
	}
	if webhookSecret == "" {
		return nil, ErrMissingStripeWebhookSecret
	}

	api := &client.API{}
	api.Init(apiKey, nil)

	return &StripeGateway{
		client:        api,
		webhookSecret: webhookSecret,
		policy:        policy,
		listLimit:     100,
		log:           logger.WithComponent("stripe"),
	}, nil
}

// GetInvoice retrieves one invoice by id. An id Stripe does not know maps to
// interfaces.ErrNotFound.
func (g *StripeGateway) GetInvoice(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	var si *stripe.Invoice
	err := g.policy.Do(ctx, func() error {
		params := &stripe.InvoiceParams{Params: stripe.Params{Context: ctx}}
		result, err := g.client.Invoices.Get(invoiceID, params)
		if err != nil {
			return classifyStripeErr(err)
		}
		si = result
		return nil
	})
	if err != nil {
		g.log.Warn().Err(err).Str("invoice_id", invoiceID).Msg("get invoice failed")
		return entities.Invoice{}, err
	}
	return invoiceFromStripe(si), nil
}

// ListRecentInvoices returns invoices created within the trailing window.
func (g *StripeGateway) ListRecentInvoices(ctx context.Context, daysBack int) ([]entities.Invoice, error) {
	cutoff := time.Now().AddDate(0, 0, -daysBack).Unix()
	g.log.Info().Int("days_back", daysBack).Time("created_after", time.Unix(cutoff, 0)).Msg("listing recent invoices")

	var invoices []entities.Invoice
	err := g.policy.Do(ctx, func() error {
		params := &stripe.InvoiceListParams{
			ListParams:   stripe.ListParams{Context: ctx, Limit: stripe.Int64(g.listLimit)},
			CreatedRange: &stripe.RangeQueryParams{GreaterThanOrEqual: cutoff},
		}

		invoices = invoices[:0]
		it := g.client.Invoices.List(params)
		for it.Next() {
			invoices = append(invoices, invoiceFromStripe(it.Invoice()))
		}
		if err := it.Err(); err != nil {
			return classifyStripeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.log.Info().Int("count", len(invoices)).Msg("retrieved recent invoices")
	return invoices, nil
}

// UpdateInvoiceMemo writes the memo (Stripe's description field) back.
func (g *StripeGateway) UpdateInvoiceMemo(ctx context.Context, invoiceID, memo string) error {
	err := g.policy.Do(ctx, func() error {
		params := &stripe.InvoiceParams{
			Params:      stripe.Params{Context: ctx},
			Description: stripe.String(memo),
		}
		if _, err := g.client.Invoices.Update(invoiceID, params); err != nil {
			return classifyStripeErr(err)
		}
		return nil
	})
	if err != nil {
		g.log.Error().Err(err).Str("invoice_id", invoiceID).Msg("memo update failed")
		return err
	}
	g.log.Info().Str("invoice_id", invoiceID).Msg("memo updated")
	return nil
}

// ParseWebhookEvent verifies the signature and decodes the event. Signature
// failures are a direct reject, never retried.
func (g *StripeGateway) ParseWebhookEvent(payload []byte, signature string) (entities.StripeEvent, error) {
	ev, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		g.log.Warn().Err(err).Msg("webhook signature rejected")
		return entities.StripeEvent{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidSignature, err)
	}

	out := entities.StripeEvent{ID: ev.ID, Type: string(ev.Type)}

	if out.Type == "invoice.deleted" {
		var si stripe.Invoice
		if err := json.Unmarshal(ev.Data.Raw, &si); err != nil {
			return entities.StripeEvent{}, fmt.Errorf("decoding deleted invoice event: %w", err)
		}
		inv := invoiceFromStripe(&si)
		inv.Status = entities.StatusDeleted
		inv.Amount = 0
		out.Invoice = &inv
		return out, nil
	}

	if !strings.HasPrefix(out.Type, invoiceEventPrefix) {
		g.log.Debug().Str("event_type", out.Type).Msg("non-invoice event, no payload decoded")
		return out, nil
	}

	var si stripe.Invoice
	if err := json.Unmarshal(ev.Data.Raw, &si); err != nil {
		return entities.StripeEvent{}, fmt.Errorf("decoding invoice event: %w", err)
	}
	inv := invoiceFromStripe(&si)
	out.Invoice = &inv
	return out, nil
}

// invoiceFromStripe maps Stripe's wire shape into the canonical model.
// StripeUpdatedAt is stamped at receipt time: Stripe reports no single
// last-modified instant on the invoice object itself.
func invoiceFromStripe(si *stripe.Invoice) entities.Invoice {
	inv := entities.Invoice{
		ID:              si.ID,
		InvoiceNumber:   si.Number,
		Status:          entities.StatusFromStripe(string(si.Status)),
		Amount:          si.AmountDue,
		Memo:            si.Description,
		StripeUpdatedAt: time.Now().UTC(),
	}
	if si.Customer != nil {
		inv.CustomerID = si.Customer.ID
	}
	if si.DueDate > 0 {
		due := time.Unix(si.DueDate, 0).UTC()
		inv.DueAt = &due
	}
	if si.StatusTransitions != nil && si.StatusTransitions.FinalizedAt > 0 {
		fin := time.Unix(si.StatusTransitions.FinalizedAt, 0).UTC()
		inv.FinalizedAt = &fin
	}
	// The service period lives on the line items, not the invoice itself.
	if si.Lines != nil && len(si.Lines.Data) > 0 && si.Lines.Data[0].Period != nil {
		period := si.Lines.Data[0].Period
		if period.Start > 0 {
			start := time.Unix(period.Start, 0).UTC()
			inv.BillingPeriodStart = &start
		}
		if period.End > 0 && period.End != period.Start {
			end := time.Unix(period.End, 0).UTC()
			inv.BillingPeriodEnd = &end
		}
	}
	return inv
}

// classifyStripeErr sorts Stripe failures into the retry taxonomy: explicit
// misses become a permanent ErrNotFound, rate limits and server errors stay
// retryable, anything else is permanent.
func classifyStripeErr(err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		switch {
		case serr.HTTPStatusCode == http.StatusNotFound || serr.Code == stripe.ErrorCodeResourceMissing:
			return backoff.Permanent(fmt.Errorf("%w: %s", interfaces.ErrNotFound, serr.Code))
		case serr.HTTPStatusCode == http.StatusTooManyRequests || serr.HTTPStatusCode >= http.StatusInternalServerError:
			return err
		default:
			return backoff.Permanent(err)
		}
	}
	// Transport-level failure with no Stripe envelope: retry.
	return err
}
