package routes

import (
	"net/http"

	"invoicesync/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks = "/webhooks"
)

func addWebhookRoutes(rg *gin.RouterGroup, stripeHandler *handlers.StripeWebhookHandler, notionHandler *handlers.NotionWebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", stripeHandler.HandleStripeWebhook)
		webhooks.POST("/notion", notionHandler.HandleNotionWebhook)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
