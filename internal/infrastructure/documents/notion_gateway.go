package documents

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/logger"
	"invoicesync/internal/retry"
	"invoicesync/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jomei/notionapi"
	"github.com/rs/zerolog"
)

var (
	ErrMissingNotionSecret     = errors.New("missing NOTION_INTEGRATION_SECRET")
	ErrMissingNotionDatabaseID = errors.New("missing NOTION_INVOICES_DATABASE_ID")
)

const stripeDashboardURL = "https://dashboard.stripe.com/invoices/"

// stripeLinkPattern pulls the invoice id out of a Stripe dashboard URL: the
// segment after "invoices/", with any query string stripped.
var stripeLinkPattern = regexp.MustCompile(`invoices/([^/?]+)`)

// Property names of the Notion invoices database.
const (
	propInvoiceNumber = "Invoice Number"
	propStatus        = "Status"
	propAmount        = "Amount"
	propStripeLink    = "Stripe link"
	propFinalized     = "Finalized"
	propDueDate       = "Due Date"
	propBillingPeriod = "Billing Period"
	propClient        = "Client"
)

// NotionGateway wraps the Notion API behind the INotionGateway contract.
//
// The invoices database has no Stripe-id field, so counterpart resolution is
// a linear scan matching the id embedded in each page's Stripe link. A
// TTL-bounded index keyed by extracted id fronts the scan; it is refreshed
// on every full scan and invalidated whenever membership changes.
type NotionGateway struct {
	client      *notionapi.Client
	invoiceDBID string
	templateID  string
	policy      retry.Policy
	pageSize    int
	log         zerolog.Logger

	mu           sync.Mutex
	idIndex      map[string]string
	idIndexValid time.Time
	indexTTL     time.Duration
}

var _ interfaces.INotionGateway = (*NotionGateway)(nil)

func NewNotionGateway(secret, invoicesDBID, templateID string, policy retry.Policy) (*NotionGateway, error) {
	if secret == "" {
		return nil, ErrMissingNotionSecret
	}
	if invoicesDBID == "" {
		return nil, ErrMissingNotionDatabaseID
	}

	return &NotionGateway{
		client:      notionapi.NewClient(notionapi.Token(secret)),
		invoiceDBID: normalizeNotionID(invoicesDBID),
		templateID:  normalizeNotionID(templateID),
		policy:      policy,
		pageSize:    100,
		log:         logger.WithComponent("notion"),
		idIndex:     map[string]string{},
		indexTTL:    5 * time.Minute,
	}, nil
}

// QueryInvoiceByStripeID locates the page whose Stripe link embeds the given
// id. A fresh index hit skips the scan; misses, stale hits and expiry fall
// back to scanning the collection. No match is interfaces.ErrNotFound.
func (g *NotionGateway) QueryInvoiceByStripeID(ctx context.Context, stripeID string) (*entities.NotionInvoice, error) {
	if pageID, ok := g.indexLookup(stripeID); ok {
		inv, err := g.GetInvoiceByPageID(ctx, pageID)
		if err == nil && inv.StripeID == stripeID {
			return inv, nil
		}
		if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
			return nil, err
		}
		// Stale index entry; rebuild from a full scan below.
	}

	pages, err := g.scanInvoicePages(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]string, len(pages))
	var match *notionapi.Page
	for i := range pages {
		id := extractStripeIDFromURL(urlProp(pages[i].Properties[propStripeLink]))
		if id == "" {
			continue
		}
		if _, seen := index[id]; !seen {
			index[id] = pages[i].ID.String()
		}
		if id == stripeID && match == nil {
			match = &pages[i]
		}
	}
	g.indexReplace(index)

	if match == nil {
		return nil, fmt.Errorf("%w: no notion page links stripe invoice %s", interfaces.ErrNotFound, stripeID)
	}
	inv := pageToNotionInvoice(*match)
	return &inv, nil
}

// GetInvoiceByPageID fetches one page directly. Notion's object_not_found
// maps to interfaces.ErrNotFound.
func (g *NotionGateway) GetInvoiceByPageID(ctx context.Context, pageID string) (*entities.NotionInvoice, error) {
	id := normalizeNotionID(pageID)

	var page *notionapi.Page
	err := g.policy.Do(ctx, func() error {
		result, err := g.client.Page.Get(ctx, notionapi.PageID(id))
		if err != nil {
			return classifyNotionErr(err)
		}
		page = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	inv := pageToNotionInvoice(*page)
	return &inv, nil
}

// CreateInvoice creates the page, then clones the template's content blocks
// onto it when a template is configured. Cloning failures leave the page
// degraded but present.
func (g *NotionGateway) CreateInvoice(ctx context.Context, inv entities.Invoice) (string, error) {
	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(g.invoiceDBID),
		},
		Properties: invoiceToProperties(inv),
	}

	var page *notionapi.Page
	err := g.policy.Do(ctx, func() error {
		result, err := g.client.Page.Create(ctx, req)
		if err != nil {
			return classifyNotionErr(err)
		}
		page = result
		return nil
	})
	if err != nil {
		return "", err
	}

	pageID := page.ID.String()
	g.indexStore(inv.ID, pageID)
	g.log.Info().Str("stripe_id", inv.ID).Str("notion_id", pageID).Msg("created invoice page")

	if g.templateID != "" {
		if err := g.cloneTemplateBlocks(ctx, pageID); err != nil {
			g.log.Warn().Err(err).Str("notion_id", pageID).Msg("template block copy failed, keeping plain page")
		}
	}
	return pageID, nil
}

// UpdateInvoice rewrites the page's properties in place.
func (g *NotionGateway) UpdateInvoice(ctx context.Context, pageID string, inv entities.Invoice) error {
	id := normalizeNotionID(pageID)
	req := &notionapi.PageUpdateRequest{Properties: invoiceToProperties(inv)}

	return g.policy.Do(ctx, func() error {
		if _, err := g.client.Page.Update(ctx, notionapi.PageID(id), req); err != nil {
			return classifyNotionErr(err)
		}
		return nil
	})
}

// ArchiveInvoice soft-deletes the page, Notion's only deletion.
func (g *NotionGateway) ArchiveInvoice(ctx context.Context, pageID string) error {
	id := normalizeNotionID(pageID)
	req := &notionapi.PageUpdateRequest{Properties: notionapi.Properties{}, Archived: true}

	err := g.policy.Do(ctx, func() error {
		if _, err := g.client.Page.Update(ctx, notionapi.PageID(id), req); err != nil {
			return classifyNotionErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	g.indexInvalidate()
	g.log.Info().Str("notion_id", id).Msg("archived invoice page")
	return nil
}

// ListRecentlyEdited returns invoices whose pages were edited within the
// window and that carry a Stripe link; pages without one cannot be synced
// back and are dropped here.
func (g *NotionGateway) ListRecentlyEdited(ctx context.Context, window time.Duration) ([]entities.NotionInvoice, error) {
	pages, err := g.scanInvoicePages(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-window)
	var out []entities.NotionInvoice
	for _, page := range pages {
		if !page.LastEditedTime.After(cutoff) {
			continue
		}
		inv := pageToNotionInvoice(page)
		if inv.StripeID == "" {
			g.log.Debug().Str("notion_id", inv.NotionID).Msg("recently edited page has no stripe link, skipping")
			continue
		}
		out = append(out, inv)
	}

	g.log.Info().Dur("window", window).Int("count", len(out)).Msg("listed recently edited invoices")
	return out, nil
}

// scanInvoicePages pulls the whole invoices database, following cursors.
func (g *NotionGateway) scanInvoicePages(ctx context.Context) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor

	for {
		var resp *notionapi.DatabaseQueryResponse
		err := g.policy.Do(ctx, func() error {
			result, err := g.client.Database.Query(ctx, notionapi.DatabaseID(g.invoiceDBID), &notionapi.DatabaseQueryRequest{
				PageSize:    g.pageSize,
				StartCursor: cursor,
			})
			if err != nil {
				return classifyNotionErr(err)
			}
			resp = result
			return nil
		})
		if err != nil {
			return nil, err
		}

		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

func (g *NotionGateway) cloneTemplateBlocks(ctx context.Context, pageID string) error {
	var children *notionapi.GetChildrenResponse
	err := g.policy.Do(ctx, func() error {
		result, err := g.client.Block.GetChildren(ctx, notionapi.BlockID(g.templateID), &notionapi.Pagination{PageSize: 100})
		if err != nil {
			return classifyNotionErr(err)
		}
		children = result
		return nil
	})
	if err != nil {
		return err
	}

	blocks := prepareBlocksForCopy(children.Results)
	if len(blocks) == 0 {
		return nil
	}

	return g.policy.Do(ctx, func() error {
		_, err := g.client.Block.AppendChildren(ctx, notionapi.BlockID(pageID), &notionapi.AppendBlockChildrenRequest{Children: blocks})
		if err != nil {
			return classifyNotionErr(err)
		}
		return nil
	})
}

func (g *NotionGateway) indexLookup(stripeID string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if time.Now().After(g.idIndexValid) {
		return "", false
	}
	pageID, ok := g.idIndex[stripeID]
	return pageID, ok
}

func (g *NotionGateway) indexReplace(index map[string]string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.idIndex = index
	g.idIndexValid = time.Now().Add(g.indexTTL)
}

func (g *NotionGateway) indexStore(stripeID, pageID string) {
	if stripeID == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.idIndex[stripeID] = pageID
}

func (g *NotionGateway) indexInvalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.idIndex = map[string]string{}
	g.idIndexValid = time.Time{}
}

// normalizeNotionID returns the canonical hyphenated form Notion expects.
// Anything that is not 32 hex characters after stripping hyphens passes
// through untouched.
func normalizeNotionID(id string) string {
	stripped := strings.ReplaceAll(id, "-", "")
	if len(stripped) != 32 {
		return id
	}
	u, err := uuid.Parse(stripped)
	if err != nil {
		return id
	}
	return u.String()
}

func extractStripeIDFromURL(url string) string {
	if url == "" {
		return ""
	}
	m := stripeLinkPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

func pageToNotionInvoice(page notionapi.Page) entities.NotionInvoice {
	props := page.Properties

	start, end := dateRangeProp(props[propBillingPeriod])
	return entities.NotionInvoice{
		NotionID:           page.ID.String(),
		StripeID:           extractStripeIDFromURL(urlProp(props[propStripeLink])),
		InvoiceNumber:      titleProp(props[propInvoiceNumber]),
		Status:             statusProp(props[propStatus]),
		Amount:             entities.AmountFromNotionNumber(numberProp(props[propAmount])),
		CustomerID:         relationProp(props[propClient]),
		FinalizedAt:        dateProp(props[propFinalized]),
		DueAt:              dateProp(props[propDueDate]),
		BillingPeriodStart: start,
		BillingPeriodEnd:   end,
		LastEditedTime:     page.LastEditedTime,
	}
}

func invoiceToProperties(inv entities.Invoice) notionapi.Properties {
	props := notionapi.Properties{
		propStatus: notionapi.StatusProperty{
			Status: notionapi.Option{Name: inv.Status.NotionName()},
		},
		propAmount: notionapi.NumberProperty{Number: inv.NotionAmount()},
		propStripeLink: notionapi.URLProperty{
			URL: stripeDashboardURL + inv.ID,
		},
		propInvoiceNumber: notionapi.TitleProperty{
			Title: []notionapi.RichText{{Text: &notionapi.Text{Content: inv.DisplayNumber()}}},
		},
	}

	if inv.FinalizedAt != nil {
		props[propFinalized] = dateProperty(*inv.FinalizedAt, nil)
	}
	if inv.DueAt != nil {
		props[propDueDate] = dateProperty(*inv.DueAt, nil)
	}
	if inv.BillingPeriodStart != nil {
		props[propBillingPeriod] = dateProperty(*inv.BillingPeriodStart, inv.BillingPeriodEnd)
	}
	return props
}

func dateProperty(start time.Time, end *time.Time) notionapi.DateProperty {
	s := notionapi.Date(start)
	obj := &notionapi.DateObject{Start: &s}
	if end != nil {
		e := notionapi.Date(*end)
		obj.End = &e
	}
	return notionapi.DateProperty{Date: obj}
}

func urlProp(p notionapi.Property) string {
	if v, ok := p.(*notionapi.URLProperty); ok {
		return v.URL
	}
	return ""
}

func titleProp(p notionapi.Property) string {
	v, ok := p.(*notionapi.TitleProperty)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, rt := range v.Title {
		b.WriteString(rt.PlainText)
	}
	return b.String()
}

func statusProp(p notionapi.Property) string {
	if v, ok := p.(*notionapi.StatusProperty); ok {
		return v.Status.Name
	}
	return ""
}

func numberProp(p notionapi.Property) float64 {
	if v, ok := p.(*notionapi.NumberProperty); ok {
		return v.Number
	}
	return 0
}

func relationProp(p notionapi.Property) string {
	if v, ok := p.(*notionapi.RelationProperty); ok && len(v.Relation) > 0 {
		return v.Relation[0].ID.String()
	}
	return ""
}

func dateProp(p notionapi.Property) *time.Time {
	v, ok := p.(*notionapi.DateProperty)
	if !ok || v.Date == nil || v.Date.Start == nil {
		return nil
	}
	t := time.Time(*v.Date.Start)
	return &t
}

// dateRangeProp decodes a date property as a range. Legacy pages that hold a
// single date decode as start-only with a nil end.
func dateRangeProp(p notionapi.Property) (*time.Time, *time.Time) {
	v, ok := p.(*notionapi.DateProperty)
	if !ok || v.Date == nil {
		return nil, nil
	}
	var start, end *time.Time
	if v.Date.Start != nil {
		t := time.Time(*v.Date.Start)
		start = &t
	}
	if v.Date.End != nil {
		t := time.Time(*v.Date.End)
		end = &t
	}
	return start, end
}

// prepareBlocksForCopy rebuilds template blocks for creation, dropping the
// identity Notion stamped on the originals. Block types outside the set a
// template realistically carries are skipped rather than risking a rejected
// append.
func prepareBlocksForCopy(blocks []notionapi.Block) []notionapi.Block {
	out := make([]notionapi.Block, 0, len(blocks))
	for _, b := range blocks {
		switch v := b.(type) {
		case *notionapi.ParagraphBlock:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.Heading1Block:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.Heading2Block:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.Heading3Block:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.BulletedListItemBlock:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.NumberedListItemBlock:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.ToDoBlock:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.QuoteBlock:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.CalloutBlock:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		case *notionapi.DividerBlock:
			v.BasicBlock = cleanBasicBlock(v.BasicBlock)
			out = append(out, v)
		}
	}
	return out
}

func cleanBasicBlock(b notionapi.BasicBlock) notionapi.BasicBlock {
	return notionapi.BasicBlock{Object: notionapi.ObjectTypeBlock, Type: b.Type}
}

// classifyNotionErr sorts Notion failures into the retry taxonomy.
func classifyNotionErr(err error) error {
	var nerr *notionapi.Error
	if errors.As(err, &nerr) {
		switch {
		case string(nerr.Code) == "object_not_found":
			return backoff.Permanent(fmt.Errorf("%w: %s", interfaces.ErrNotFound, nerr.Message))
		case string(nerr.Code) == "rate_limited" || nerr.Status == http.StatusTooManyRequests || nerr.Status >= http.StatusInternalServerError:
			return err
		default:
			return backoff.Permanent(err)
		}
	}
	return err
}
