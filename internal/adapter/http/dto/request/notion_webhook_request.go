package request

// NotionWebhookRequest is the payload Notion automations post when an
// invoice page changes. Only the page id is carried; the page itself is
// re-fetched so the sync never trusts stale webhook snapshots.

type NotionWebhookRequest struct {
	PageID string `json:"page_id"`
}
