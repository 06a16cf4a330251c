package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the closed status vocabulary shared by both platforms.
//
// Stripe reports lowercase status strings; Notion uses a "Status" property
// with its own names. Both sides map through this type, and anything
// unrecognized falls back to StatusDraft rather than failing.

type InvoiceStatus string

const (
	StatusDraft         InvoiceStatus = "draft"
	StatusOpen          InvoiceStatus = "open"
	StatusPaid          InvoiceStatus = "paid"
	StatusUncollectible InvoiceStatus = "uncollectible"
	StatusVoid          InvoiceStatus = "void"

	// StatusDeleted is a terminal, one-way signal: it triggers archival on
	// the Notion side and is never written back to Stripe.
	StatusDeleted InvoiceStatus = "deleted"
)

// Invoice is the canonical, side-agnostic invoice record.
//
// Records are built fresh on every reconciliation attempt from whichever
// side triggered it and discarded afterwards; Stripe and Notion each own
// the durable copy of their data.

type Invoice struct {
	ID            string // Stripe invoice id; empty if the record has no Stripe linkage yet
	NotionID      string // Notion page id; empty if not yet created there
	InvoiceNumber string
	Status        InvoiceStatus
	Amount        int64 // minor currency units (cents)
	Memo          string
	CustomerID    string

	FinalizedAt        *time.Time
	DueAt              *time.Time
	BillingPeriodStart *time.Time
	BillingPeriodEnd   *time.Time

	LastSyncedAt    time.Time
	StripeUpdatedAt time.Time
	NotionUpdatedAt time.Time
}

// NotionInvoice is the decoded shape of a Notion invoice page. Pages with only
// the legacy single-date billing period decode as start-only with a nil end;
// no attribute probing happens past the gateway boundary.

type NotionInvoice struct {
	NotionID      string
	StripeID      string
	InvoiceNumber string
	Status        string
	Amount        int64
	CustomerID    string

	FinalizedAt        *time.Time
	DueAt              *time.Time
	BillingPeriodStart *time.Time
	BillingPeriodEnd   *time.Time

	LastEditedTime time.Time
}

// StripeEvent is a verified webhook event. Invoice is nil for event types
// that carry no invoice lifecycle change.

type StripeEvent struct {
	ID      string
	Type    string
	Invoice *Invoice
}

var stripeStatusMap = map[string]InvoiceStatus{
	"draft":         StatusDraft,
	"open":          StatusOpen,
	"paid":          StatusPaid,
	"uncollectible": StatusUncollectible,
	"void":          StatusVoid,
}

// Notion has no "Open" or "Uncollectible" status; "Pending" stands in for
// open and uncollectible collapses into "Void".
var notionStatusNames = map[InvoiceStatus]string{
	StatusDraft:         "Draft",
	StatusOpen:          "Pending",
	StatusPaid:          "Paid",
	StatusUncollectible: "Void",
	StatusVoid:          "Void",
}

var notionStatusMap = map[string]InvoiceStatus{
	"Draft":   StatusDraft,
	"Pending": StatusOpen,
	"Paid":    StatusPaid,
	"Void":    StatusVoid,
}

// StatusFromStripe maps a Stripe status string into the shared vocabulary.
func StatusFromStripe(s string) InvoiceStatus {
	if st, ok := stripeStatusMap[s]; ok {
		return st
	}
	return StatusDraft
}

// StatusFromNotion maps a Notion status name into the shared vocabulary.
func StatusFromNotion(name string) InvoiceStatus {
	if st, ok := notionStatusMap[name]; ok {
		return st
	}
	return StatusDraft
}

// NotionName returns the Notion status name for this status.
func (s InvoiceStatus) NotionName() string {
	if name, ok := notionStatusNames[s]; ok {
		return name
	}
	return "Draft"
}

// AmountFromNotionNumber converts a Notion major-unit decimal number into
// minor units. Notion stores amounts as floats, so the scaling goes through
// decimal to avoid float drift on money.
func AmountFromNotionNumber(n float64) int64 {
	return decimal.NewFromFloat(n).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// NotionAmount returns the invoice amount as a Notion major-unit number.
func (i Invoice) NotionAmount() float64 {
	f, _ := decimal.NewFromInt(i.Amount).Div(decimal.NewFromInt(100)).Float64()
	return f
}

// DisplayNumber returns the invoice number, generating a fallback from the
// Stripe id when Stripe reports none: the unique tail of the id uppercased,
// with a -DRAFT suffix while the invoice is still a draft.
func (i Invoice) DisplayNumber() string {
	if i.InvoiceNumber != "" {
		return i.InvoiceNumber
	}
	idPart := i.ID
	if idx := strings.LastIndex(idPart, "_"); idx >= 0 {
		idPart = idPart[idx+1:]
	}
	if len(idPart) > 8 {
		idPart = idPart[len(idPart)-8:]
	}
	number := strings.ToUpper(idPart)
	if i.Status == StatusDraft {
		number += "-DRAFT"
	}
	return number
}

// ToInvoice converts the Notion-side record into the canonical model.
func (n NotionInvoice) ToInvoice() Invoice {
	return Invoice{
		ID:                 n.StripeID,
		NotionID:           n.NotionID,
		InvoiceNumber:      n.InvoiceNumber,
		Status:             StatusFromNotion(n.Status),
		Amount:             n.Amount,
		CustomerID:         n.CustomerID,
		FinalizedAt:        n.FinalizedAt,
		DueAt:              n.DueAt,
		BillingPeriodStart: n.BillingPeriodStart,
		BillingPeriodEnd:   n.BillingPeriodEnd,
		NotionUpdatedAt:    n.LastEditedTime,
	}
}
