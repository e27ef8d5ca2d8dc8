package handlers

import (
	"errors"
	"net/http"

	"challengecart/internal/domain/coupon"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	service *coupon.Service
}

func NewCouponHandler(service *coupon.Service) CouponHandler {
	return CouponHandler{service: service}
}

type cartRequest struct {
	ProgramID     uuid.UUID `json:"program_id" binding:"required"`
	AccountSize   string    `json:"account_size"`
	OrderAmount   float64   `json:"order_amount" binding:"required,gt=0"`
	CustomerEmail string    `json:"customer_email"`
}

func (r cartRequest) toCart() coupon.CartContext {
	return coupon.CartContext{
		ProgramID:     r.ProgramID,
		AccountSize:   r.AccountSize,
		OrderAmount:   r.OrderAmount,
		CustomerEmail: r.CustomerEmail,
	}
}

type validateRequest struct {
	cartRequest
	Code string `json:"code" binding:"required"`
}

type urlCheckRequest struct {
	cartRequest
	Params map[string]string `json:"params" binding:"required"`
}

// couponView is the checkout-facing projection: enough to render the applied
// discount, nothing about limits or affiliate bindings.
type couponView struct {
	Code             string  `json:"code"`
	DiscountType     string  `json:"discount_type"`
	DiscountValue    float64 `json:"discount_value"`
	DiscountAmount   float64 `json:"discount_amount"`
	AutoApplyMessage string  `json:"auto_apply_message,omitempty"`
	Priority         int     `json:"priority,omitempty"`
}

func newCouponView(c *coupon.Coupon, cart coupon.CartContext) couponView {
	return couponView{
		Code:             c.Code,
		DiscountType:     string(c.DiscountType),
		DiscountValue:    c.DiscountValue,
		DiscountAmount:   c.DiscountFor(cart.AccountSize, cart.OrderAmount),
		AutoApplyMessage: c.AutoApplyMessage,
		Priority:         c.AutoApplyPriority,
	}
}

// AutoApply lists every valid auto-apply coupon for the cart, best first.
func (h *CouponHandler) AutoApply(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cart := req.toCart()
	coupons, err := h.service.FindAutoApplyCoupons(c.Request.Context(), cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	views := make([]couponView, 0, len(coupons))
	for i := range coupons {
		views = append(views, newCouponView(&coupons[i], cart))
	}
	c.JSON(http.StatusOK, gin.H{"coupons": views})
}

// Best returns the single coupon the checkout should pre-apply, if any.
func (h *CouponHandler) Best(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cart := req.toCart()
	best, err := h.service.BestAutoApplyCoupon(c.Request.Context(), cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if best == nil {
		c.JSON(http.StatusOK, gin.H{"coupon": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon": newCouponView(best, cart)})
}

// Validate checks a manually typed code against the cart.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cart := req.toCart()
	cpn, err := h.service.ValidateManualCode(c.Request.Context(), req.Code, cart)
	if err != nil {
		status, ok := rejectionStatus(err)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(status, gin.H{"valid": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "coupon": newCouponView(&cpn, cart)})
}

// URLCheck resolves a coupon from landing-page query parameters. No coupon is
// a normal outcome, never an error.
func (h *CouponHandler) URLCheck(c *gin.Context) {
	var req urlCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cart := req.toCart()
	cpn, err := h.service.CheckURLCoupon(c.Request.Context(), req.Params, cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if cpn == nil {
		c.JSON(http.StatusOK, gin.H{"coupon": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon": newCouponView(cpn, cart)})
}

// rejectionStatus maps a business rejection to its HTTP status. A second
// return of false marks an infrastructure failure.
func rejectionStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, coupon.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, coupon.ErrInactive),
		errors.Is(err, coupon.ErrNotStarted),
		errors.Is(err, coupon.ErrExpired),
		errors.Is(err, coupon.ErrProgramRestricted),
		errors.Is(err, coupon.ErrUsageLimitReached),
		errors.Is(err, coupon.ErrUserLimitReached),
		errors.Is(err, coupon.ErrAffiliateConflict),
		errors.Is(err, coupon.ErrManualEntryBlocked):
		return http.StatusUnprocessableEntity, true
	default:
		return 0, false
	}
}
