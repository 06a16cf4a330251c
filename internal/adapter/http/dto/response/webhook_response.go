package response

type WebhookResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	NotionID string `json:"notion_id,omitempty"`
}

func WebhookAccepted(message, notionID string) WebhookResponse {
	return WebhookResponse{Success: true, Message: message, NotionID: notionID}
}

func WebhookFailed(message string) WebhookResponse {
	return WebhookResponse{Success: false, Message: message}
}
