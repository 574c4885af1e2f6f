package routes

import (
	"github.com/DJSYT/MineCloud/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

// TrackingRoutes handles the setup of beacon-tracking routes
type TrackingRoutes struct {
	handler *handlers.TrackingHandler
}

// NewTrackingRoutes creates a new TrackingRoutes instance
func NewTrackingRoutes(handler *handlers.TrackingHandler) *TrackingRoutes {
	return &TrackingRoutes{handler: handler}
}

// RegisterRoutes registers the beacon endpoints
func (r *TrackingRoutes) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.POST("/track-view", r.handler.TrackView)
	api.POST("/track-discord-join", r.handler.TrackDiscordJoin)
}
