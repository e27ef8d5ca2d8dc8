package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"challengecart/internal/domain/anomaly"
	"challengecart/internal/domain/order"
	"challengecart/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(context.Context, order.Order) {}

func webhookRouter(t *testing.T) (*gin.Engine, *order.MockRepo) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	log := logger.New("error", "json")
	mockRepo := order.NewMockRepo(gomock.NewController(t))
	service := order.NewService(mockRepo, nopDispatcher{}, anomaly.NopSink{}, log)
	handler := NewWebhookHandler(service, log)

	engine := gin.New()
	engine.POST("/webhooks/payment", handler.Receive)
	engine.GET("/webhooks/payment", handler.Verify)
	return engine, mockRepo
}

func postWebhook(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)
	return rec
}

func TestWebhookHandler_Receive(t *testing.T) {
	t.Parallel()

	approvedBody := `{"event":"approved","order_id":"#10042","status":"approved","transaction_id":"tx_1"}`

	t.Run("should process an approved event", func(t *testing.T) {
		engine, mockRepo := webhookRouter(t)
		existing := order.Order{ID: uuid.New(), OrderNumber: "#10042", Status: order.StatusPending}

		mockRepo.EXPECT().GetByOrderNumber(gomock.Any(), "#10042").Return(existing, nil)
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), existing.ID, order.StatusCompleted, "tx_1").Return(nil)

		rec := postWebhook(engine, approvedBody)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject an empty body", func(t *testing.T) {
		engine, _ := webhookRouter(t)

		rec := postWebhook(engine, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		engine, _ := webhookRouter(t)

		rec := postWebhook(engine, "{not json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should acknowledge unrecognized event types", func(t *testing.T) {
		engine, _ := webhookRouter(t)

		rec := postWebhook(engine, `{"event":"cashier.session.close","order_id":"#10042"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ignored")
	})

	t.Run("should acknowledge events for unknown orders", func(t *testing.T) {
		engine, mockRepo := webhookRouter(t)

		mockRepo.EXPECT().GetByOrderNumber(gomock.Any(), "#10042").Return(order.Order{}, order.ErrNotFound)

		rec := postWebhook(engine, approvedBody)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "not found")
	})

	t.Run("should bounce processing failures for redelivery", func(t *testing.T) {
		engine, mockRepo := webhookRouter(t)

		mockRepo.EXPECT().GetByOrderNumber(gomock.Any(), "#10042").Return(order.Order{}, errors.New("connection lost"))

		rec := postWebhook(engine, approvedBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWebhookHandler_Verify(t *testing.T) {
	t.Parallel()

	t.Run("should echo the challenge", func(t *testing.T) {
		engine, _ := webhookRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/webhooks/payment?challenge=abc123", nil)
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "abc123", rec.Body.String())
	})

	t.Run("should reject a probe without a challenge", func(t *testing.T) {
		engine, _ := webhookRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/webhooks/payment", nil)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
