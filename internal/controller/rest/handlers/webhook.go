package handlers

import (
	"errors"
	"io"
	"net/http"

	"challengecart/internal/domain/gateway"
	"challengecart/internal/domain/order"
	"challengecart/pkg/logger"
	"challengecart/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	service *order.Service
	log     *logger.Logger
}

func NewWebhookHandler(service *order.Service, log *logger.Logger) WebhookHandler {
	return WebhookHandler{service: service, log: log}
}

// Receive handles the payment-gateway webhook. The gateway redelivers on
// non-2xx, so only a malformed request or a genuine processing failure is
// allowed to produce one: unknown event types and unknown orders are
// acknowledged and flagged instead of bounced forever.
func (h *WebhookHandler) Receive(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unreadable body"})
		return
	}

	ev, err := gateway.Normalize(raw)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrUnrecognizedEvent):
			// Gateways add event types without notice; ack and move on.
			metrics.WebhookEventsTotal.WithLabelValues("unknown", "ignored").Inc()
			h.log.InfoContext(c.Request.Context(), "unrecognized gateway event ignored", "error", err)
			c.JSON(http.StatusOK, gin.H{"message": "event ignored"})
		default:
			metrics.WebhookEventsTotal.WithLabelValues("unknown", "malformed").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		}
		return
	}

	err = h.service.ProcessGatewayEvent(c.Request.Context(), ev)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			// Flagged as an anomaly inside the service; a retry storm from the
			// gateway would not make the order appear.
			metrics.WebhookEventsTotal.WithLabelValues(string(ev.Type), "order_not_found").Inc()
			c.JSON(http.StatusOK, gin.H{"message": "order not found, event acknowledged"})
			return
		}
		metrics.WebhookEventsTotal.WithLabelValues(string(ev.Type), "failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	metrics.WebhookEventsTotal.WithLabelValues(string(ev.Type), "processed").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "processed"})
}

// Verify answers the gateway's endpoint-verification probe by echoing the
// challenge back.
func (h *WebhookHandler) Verify(c *gin.Context) {
	challenge := c.Query("challenge")
	if challenge == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing challenge"})
		return
	}
	c.String(http.StatusOK, challenge)
}
