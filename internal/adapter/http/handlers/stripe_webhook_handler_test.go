package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoicesync/internal/domain/entities"
	"invoicesync/internal/usecase/interfaces"
	ifmocks "invoicesync/internal/usecase/interfaces/mocks"
	ucmocks "invoicesync/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newStripeWebhookRouter(h *StripeWebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/webhooks/stripe", h.HandleStripeWebhook)
	return r
}

func TestStripeWebhookHandler_HandleStripeWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing signature header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stripe := ifmocks.NewMockIStripeGateway(ctrl)
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewStripeWebhookHandler(stripe, sync)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		newStripeWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stripe := ifmocks.NewMockIStripeGateway(ctrl)
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewStripeWebhookHandler(stripe, sync)

		stripe.EXPECT().
			ParseWebhookEvent(gomock.Any(), "t=1,v1=bad").
			Return(entities.StripeEvent{}, interfaces.ErrInvalidSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=bad")
		w := httptest.NewRecorder()
		newStripeWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["code"] != "INVALID_SIGNATURE" {
			t.Errorf("expected INVALID_SIGNATURE, got %v", body["code"])
		}
	})

	t.Run("malformed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stripe := ifmocks.NewMockIStripeGateway(ctrl)
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewStripeWebhookHandler(stripe, sync)

		stripe.EXPECT().
			ParseWebhookEvent(gomock.Any(), gomock.Any()).
			Return(entities.StripeEvent{}, errors.New("bad json"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`not json`))
		req.Header.Set("Stripe-Signature", "t=1,v1=sig")
		w := httptest.NewRecorder()
		newStripeWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("event without invoice is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stripe := ifmocks.NewMockIStripeGateway(ctrl)
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewStripeWebhookHandler(stripe, sync)

		stripe.EXPECT().
			ParseWebhookEvent(gomock.Any(), gomock.Any()).
			Return(entities.StripeEvent{ID: "evt_1", Type: "customer.created"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=sig")
		w := httptest.NewRecorder()
		newStripeWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["success"] != true || body["message"] != "no action needed" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("invoice event syncs to notion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stripe := ifmocks.NewMockIStripeGateway(ctrl)
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewStripeWebhookHandler(stripe, sync)

		inv := entities.Invoice{ID: "in_123", Status: entities.StatusOpen}
		stripe.EXPECT().
			ParseWebhookEvent(gomock.Any(), gomock.Any()).
			Return(entities.StripeEvent{ID: "evt_1", Type: "invoice.updated", Invoice: &inv}, nil)
		sync.EXPECT().
			SyncToNotion(gomock.Any(), inv).
			Return(true, "page-1")

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=sig")
		w := httptest.NewRecorder()
		newStripeWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["success"] != true || body["notion_id"] != "page-1" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("sync failure still returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stripe := ifmocks.NewMockIStripeGateway(ctrl)
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewStripeWebhookHandler(stripe, sync)

		inv := entities.Invoice{ID: "in_123", Status: entities.StatusOpen}
		stripe.EXPECT().
			ParseWebhookEvent(gomock.Any(), gomock.Any()).
			Return(entities.StripeEvent{ID: "evt_1", Type: "invoice.updated", Invoice: &inv}, nil)
		sync.EXPECT().
			SyncToNotion(gomock.Any(), inv).
			Return(false, "")

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=sig")
		w := httptest.NewRecorder()
		newStripeWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["success"] != false {
			t.Errorf("expected success=false, got %v", body)
		}
	})
}
