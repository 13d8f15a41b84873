package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"titanguard/internal/core/services"
)

type Handler struct {
	manager *services.Manager
}

func New(manager *services.Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Web pages
	r.GET("/", h.Index)
	r.POST("/", h.PredictForm)
	r.GET("/metrics", h.MetricsPage)

	// JSON API
	r.GET("/api/metrics", h.GetMetrics)
	r.POST("/api/predict", h.PredictAPI)
	r.GET("/api/model", h.GetModelInfo)
	r.GET("/api/health", h.Health)

	// Operational metrics. /metrics is taken by the model dashboard, so the
	// Prometheus scrape endpoint lives under /internal.
	r.GET("/internal/metrics", gin.WrapH(promhttp.Handler()))
}
