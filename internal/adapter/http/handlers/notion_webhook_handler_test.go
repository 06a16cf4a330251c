package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ucmocks "invoicesync/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newNotionWebhookRouter(h *NotionWebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/webhooks/notion", h.HandleNotionWebhook)
	return r
}

func TestNotionWebhookHandler_HandleNotionWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewNotionWebhookHandler(sync)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/notion", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newNotionWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing page_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewNotionWebhookHandler(sync)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/notion", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newNotionWebhookRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body["code"] != "MISSING_PAGE_ID" {
			t.Errorf("expected MISSING_PAGE_ID, got %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewNotionWebhookHandler(sync)

		sync.EXPECT().SyncToStripe(gomock.Any(), "page-1").Return(true)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/notion", bytes.NewBufferString(`{"page_id":"page-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newNotionWebhookRouter(h).ServeHTTP(w, req)

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
		sync := ucmocks.NewMockISyncUseCase(ctrl)
		h := NewNotionWebhookHandler(sync)

		sync.EXPECT().SyncToStripe(gomock.Any(), "page-1").Return(false)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/notion", bytes.NewBufferString(`{"page_id":"page-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newNotionWebhookRouter(h).ServeHTTP(w, req)

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
