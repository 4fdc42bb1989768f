package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the dashboard endpoints.
//
//	GET  /health
//	GET  /metrics
//	GET  /api/v1/history
//	GET  /api/v1/history/summary
//	POST /api/v1/forecast
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/health", h.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/history", h.HandleHistory)
	v1.GET("/history/summary", h.HandleSummary)
	v1.POST("/forecast", h.HandleForecast)
}
