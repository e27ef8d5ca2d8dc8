package handlers

import (
	"errors"
	"net/http"
	"time"

	"challengecart/internal/domain/order"
	"challengecart/internal/fulfillment"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *order.Service
	ledger  fulfillment.Ledger
}

func NewOrderHandler(service *order.Service, ledger fulfillment.Ledger) OrderHandler {
	return OrderHandler{service: service, ledger: ledger}
}

// Get is the operator lookup route. The response carries the latest
// integration outcome per dispatch step alongside the order itself.
func (h *OrderHandler) Get(c *gin.Context) {
	orderNumber := c.Param("order_number")
	if orderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing order_number"})
		return
	}

	o, err := h.service.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	outcomes, err := h.ledger.Outcomes(c.Request.Context(), o.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":                o,
		"integration_outcomes": outcomeViews(outcomes),
	})
}

type outcomeView struct {
	Step      string `json:"step"`
	Status    string `json:"status"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

func outcomeViews(outcomes map[string]fulfillment.Outcome) []outcomeView {
	views := make([]outcomeView, 0, len(outcomes))
	for _, o := range outcomes {
		views = append(views, outcomeView{
			Step:      o.Step,
			Status:    string(o.Status),
			Detail:    o.Detail,
			CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return views
}
