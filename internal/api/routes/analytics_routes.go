package routes

import (
	"github.com/DJSYT/MineCloud/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

// AnalyticsRoutes handles the setup of the analytics route
type AnalyticsRoutes struct {
	handler *handlers.AnalyticsHandler
}

// NewAnalyticsRoutes creates a new AnalyticsRoutes instance
func NewAnalyticsRoutes(handler *handlers.AnalyticsHandler) *AnalyticsRoutes {
	return &AnalyticsRoutes{handler: handler}
}

// RegisterRoutes registers the admin analytics endpoint
func (r *AnalyticsRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/analytics", r.handler.GetAnalytics)
}
