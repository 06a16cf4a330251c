package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/retry"
	"invoicesync/internal/usecase/interfaces"

	stripe "github.com/stripe/stripe-go/v74"
)

func TestNewStripeGateway(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		if _, err := NewStripeGateway("", "whsec_x", retry.DefaultPolicy()); !errors.Is(err, ErrMissingStripeAPIKey) {
			t.Fatalf("expected ErrMissingStripeAPIKey, got %v", err)
		}
	})

	t.Run("missing webhook secret", func(t *testing.T) {
		if _, err := NewStripeGateway("sk_test_x", "", retry.DefaultPolicy()); !errors.Is(err, ErrMissingStripeWebhookSecret) {
			t.Fatalf("expected ErrMissingStripeWebhookSecret, got %v", err)
		}
	})
}

func TestParseWebhookEvent_InvalidSignature(t *testing.T) {
	g, err := NewStripeGateway("sk_test_x", "whsec_x", retry.DefaultPolicy())
	if err != nil {
		t.Fatalf("gateway setup failed: %v", err)
	}

	_, err = g.ParseWebhookEvent([]byte(`{"type":"invoice.paid"}`), "t=1,v1=bogus")
	if !errors.Is(err, interfaces.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func signStripePayload(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestParseWebhookEvent_EveryInvoiceLifecycleEventCarriesPayload(t *testing.T) {
	const secret = "whsec_test"
	g, err := NewStripeGateway("sk_test_x", secret, retry.DefaultPolicy())
	if err != nil {
		t.Fatalf("gateway setup failed: %v", err)
	}

	parse := func(t *testing.T, body string) entities.StripeEvent {
		t.Helper()
		payload := []byte(body)
		ev, err := g.ParseWebhookEvent(payload, signStripePayload(t, payload, secret))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		return ev
	}

	t.Run("voided invoice syncs", func(t *testing.T) {
		ev := parse(t, `{"id":"evt_1","api_version":"2022-11-15","type":"invoice.voided","data":{"object":{"id":"in_123","status":"void","amount_due":14999}}}`)
		if ev.Invoice == nil {
			t.Fatal("invoice.voided must carry an invoice payload")
		}
		if ev.Invoice.Status != entities.StatusVoid {
			t.Fatalf("expected void status, got %q", ev.Invoice.Status)
		}
	})

	t.Run("marked uncollectible syncs", func(t *testing.T) {
		ev := parse(t, `{"id":"evt_2","api_version":"2022-11-15","type":"invoice.marked_uncollectible","data":{"object":{"id":"in_123","status":"uncollectible"}}}`)
		if ev.Invoice == nil {
			t.Fatal("invoice.marked_uncollectible must carry an invoice payload")
		}
		if ev.Invoice.Status != entities.StatusUncollectible {
			t.Fatalf("expected uncollectible status, got %q", ev.Invoice.Status)
		}
	})

	t.Run("sent invoice syncs", func(t *testing.T) {
		ev := parse(t, `{"id":"evt_3","api_version":"2022-11-15","type":"invoice.sent","data":{"object":{"id":"in_123","status":"open"}}}`)
		if ev.Invoice == nil {
			t.Fatal("invoice.sent must carry an invoice payload")
		}
	})

	t.Run("deleted invoice becomes a terminal record", func(t *testing.T) {
		ev := parse(t, `{"id":"evt_4","api_version":"2022-11-15","type":"invoice.deleted","data":{"object":{"id":"in_123","status":"paid","amount_due":14999}}}`)
		if ev.Invoice == nil {
			t.Fatal("invoice.deleted must carry an invoice payload")
		}
		if ev.Invoice.Status != entities.StatusDeleted || ev.Invoice.Amount != 0 {
			t.Fatalf("expected zeroed deleted record, got %+v", ev.Invoice)
		}
	})

	t.Run("non-invoice event decodes nothing", func(t *testing.T) {
		ev := parse(t, `{"id":"evt_5","api_version":"2022-11-15","type":"customer.created","data":{"object":{"id":"cus_9"}}}`)
		if ev.Invoice != nil {
			t.Fatalf("customer event must not carry an invoice, got %+v", ev.Invoice)
		}
	})
}

func TestClassifyStripeErr(t *testing.T) {
	attempts := func(err error) int {
		calls := 0
		policy := retry.Policy{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
		_ = policy.Do(context.Background(), func() error {
			calls++
			return classifyStripeErr(err)
		})
		return calls
	}

	t.Run("resource missing maps to not found without retrying", func(t *testing.T) {
		err := classifyStripeErr(&stripe.Error{HTTPStatusCode: 404, Code: stripe.ErrorCodeResourceMissing})
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Fatalf("classification lost ErrNotFound: %v", err)
		}
		if calls := attempts(&stripe.Error{HTTPStatusCode: 404}); calls != 1 {
			t.Fatalf("not found retried %d times", calls)
		}
	})

	t.Run("rate limit retries", func(t *testing.T) {
		if calls := attempts(&stripe.Error{HTTPStatusCode: 429}); calls != 3 {
			t.Fatalf("rate limit retried %d times, want 3", calls)
		}
	})

	t.Run("server error retries", func(t *testing.T) {
		if calls := attempts(&stripe.Error{HTTPStatusCode: 500}); calls != 3 {
			t.Fatalf("server error retried %d times, want 3", calls)
		}
	})

	t.Run("client error is permanent", func(t *testing.T) {
		if calls := attempts(&stripe.Error{HTTPStatusCode: 400}); calls != 1 {
			t.Fatalf("client error retried %d times", calls)
		}
	})

	t.Run("network error retries", func(t *testing.T) {
		if calls := attempts(errors.New("connection reset")); calls != 3 {
			t.Fatalf("network error retried %d times, want 3", calls)
		}
	})
}

func TestInvoiceFromStripe(t *testing.T) {
	si := &stripe.Invoice{
		ID:          "in_123",
		Number:      "INV-0042",
		Status:      stripe.InvoiceStatusOpen,
		AmountDue:   14999,
		Description: "Net 30 terms",
		Customer:    &stripe.Customer{ID: "cus_9"},
		DueDate:     time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC).Unix(),
		StatusTransitions: &stripe.InvoiceStatusTransitions{
			FinalizedAt: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC).Unix(),
		},
		Lines: &stripe.InvoiceLineItemList{
			Data: []*stripe.InvoiceLineItem{{
				Period: &stripe.Period{
					Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).Unix(),
					End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC).Unix(),
				},
			}},
		},
	}

	inv := invoiceFromStripe(si)
	if inv.ID != "in_123" || inv.InvoiceNumber != "INV-0042" || inv.CustomerID != "cus_9" {
		t.Fatalf("identity fields wrong: %+v", inv)
	}
	if inv.Status != entities.StatusOpen {
		t.Fatalf("expected open, got %q", inv.Status)
	}
	if inv.Amount != 14999 || inv.Memo != "Net 30 terms" {
		t.Fatalf("amount/memo wrong: %+v", inv)
	}
	if inv.DueAt == nil || inv.FinalizedAt == nil {
		t.Fatalf("expected due and finalized dates")
	}
	if inv.BillingPeriodStart == nil || inv.BillingPeriodEnd == nil {
		t.Fatalf("expected billing period from the first line item")
	}
	if got := inv.BillingPeriodStart.Format("2006-01-02"); got != "2024-01-01" {
		t.Fatalf("billing period start = %s", got)
	}
	if inv.StripeUpdatedAt.IsZero() {
		t.Fatalf("expected stripe timestamp stamped")
	}
}
