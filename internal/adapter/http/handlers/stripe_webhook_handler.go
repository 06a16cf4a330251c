package handlers

import (
	"errors"
	"net/http"

	response "invoicesync/internal/adapter/http/dto/response"
	"invoicesync/internal/logger"
	"invoicesync/internal/usecase"
	"invoicesync/internal/usecase/interfaces"
	"invoicesync/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StripeWebhookHandler receives Stripe invoice events and pushes them to
// Notion. Signature verification happens before any payload field is read.

type StripeWebhookHandler struct {
	stripe interfaces.IStripeGateway
	sync   usecase.ISyncUseCase
	log    zerolog.Logger
}

func NewStripeWebhookHandler(stripe interfaces.IStripeGateway, sync usecase.ISyncUseCase) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		stripe: stripe,
		sync:   sync,
		log:    logger.WithComponent("stripe_webhook"),
	}
}

// HandleStripeWebhook verifies and processes one Stripe event.
func (h *StripeWebhookHandler) HandleStripeWebhook(c *gin.Context) {
	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		h.log.Warn().Msg("webhook rejected, missing signature header")
		appErr := pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Stripe-Signature header is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		h.log.Warn().Err(err).Msg("webhook rejected, unreadable body")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := h.stripe.ParseWebhookEvent(payload, signature)
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidSignature) {
			h.log.Warn().Err(err).Msg("webhook rejected, signature verification failed")
			appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.log.Warn().Err(err).Msg("webhook rejected, malformed event")
		appErr := pkg.NewDomainErrorSimple("INVALID_EVENT", "Malformed webhook event", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if event.Invoice == nil {
		h.log.Debug().Str("event_id", event.ID).Str("event_type", event.Type).Msg("event carries no invoice change")
		c.JSON(http.StatusOK, response.WebhookAccepted("no action needed", ""))
		return
	}

	h.log.Info().Str("event_id", event.ID).Str("event_type", event.Type).Str("stripe_id", event.Invoice.ID).Msg("processing invoice event")

	ok, pageID := h.sync.SyncToNotion(c.Request.Context(), *event.Invoice)
	if !ok {
		c.JSON(http.StatusOK, response.WebhookFailed("invoice sync failed"))
		return
	}
	c.JSON(http.StatusOK, response.WebhookAccepted("invoice synced", pageID))
}
