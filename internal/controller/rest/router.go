package rest

import (
	"challengecart/internal/controller/rest/handlers"
	"challengecart/pkg/health"
	"challengecart/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	webhook handlers.WebhookHandler
	coupon  handlers.CouponHandler
	order   handlers.OrderHandler

	health *health.Registry
}

func NewRouter(webhook handlers.WebhookHandler, coupon handlers.CouponHandler, order handlers.OrderHandler, healthReg *health.Registry) *Router {
	return &Router{
		webhook: webhook,
		coupon:  coupon,
		order:   order,
		health:  healthReg,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.health, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/webhooks/payment", r.webhook.Receive)
	engine.GET("/webhooks/payment", r.webhook.Verify)

	internal := engine.Group("/internal")
	internal.POST("/coupons/auto-apply", r.coupon.AutoApply)
	internal.POST("/coupons/best", r.coupon.Best)
	internal.POST("/coupons/validate", r.coupon.Validate)
	internal.POST("/coupons/url-check", r.coupon.URLCheck)
	internal.GET("/orders/:order_number", r.order.Get)
}
