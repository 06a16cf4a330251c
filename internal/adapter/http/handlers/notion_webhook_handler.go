package handlers

import (
	"net/http"

	request "invoicesync/internal/adapter/http/dto/request"
	response "invoicesync/internal/adapter/http/dto/response"
	"invoicesync/internal/logger"
	"invoicesync/internal/usecase"
	"invoicesync/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NotionWebhookHandler receives page-change notifications from Notion
// automations and pushes the billing period back into Stripe.

type NotionWebhookHandler struct {
	sync usecase.ISyncUseCase
	log  zerolog.Logger
}

func NewNotionWebhookHandler(sync usecase.ISyncUseCase) *NotionWebhookHandler {
	return &NotionWebhookHandler{
		sync: sync,
		log:  logger.WithComponent("notion_webhook"),
	}
}

// HandleNotionWebhook processes one page-change notification.
func (h *NotionWebhookHandler) HandleNotionWebhook(c *gin.Context) {
	var req request.NotionWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn().Err(err).Msg("webhook rejected, malformed payload")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if req.PageID == "" {
		h.log.Warn().Msg("webhook rejected, missing page_id")
		appErr := pkg.NewDomainErrorSimple("MISSING_PAGE_ID", "page_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.log.Info().Str("notion_id", req.PageID).Msg("processing page change")

	if ok := h.sync.SyncToStripe(c.Request.Context(), req.PageID); !ok {
		c.JSON(http.StatusOK, response.WebhookFailed("page sync failed"))
		return
	}
	c.JSON(http.StatusOK, response.WebhookAccepted("page synced", req.PageID))
}
