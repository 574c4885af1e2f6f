package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/DJSYT/MineCloud/internal/api/dto"
	"github.com/DJSYT/MineCloud/internal/api/middleware"
	"github.com/DJSYT/MineCloud/internal/domain/tracking"
	"github.com/DJSYT/MineCloud/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrackingHandler struct {
	service tracking.Service
	log     *logger.Logger
}

func NewTrackingHandler(service tracking.Service, log *logger.Logger) *TrackingHandler {
	return &TrackingHandler{service: service, log: log}
}

// TrackView records a page-view beacon. Beacons are fire-and-forget, so an
// empty body is treated like an empty object.
func (h *TrackingHandler) TrackView(c *gin.Context) {
	var req dto.TrackPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	// Boundary default: a beacon with no page is a hit on the landing page.
	page := req.Page
	if page == "" {
		page = "/"
	}

	_, err := h.service.TrackPageView(c.Request.Context(), tracking.TrackPageViewInput{
		Page:      page,
		UserID:    req.UserID,
		UserAgent: req.UserAgent,
		IPAddress: req.IPAddress,
	})
	if err != nil {
		h.log.Error("Error tracking page view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track page view"})
		return
	}

	middleware.CountBeacon("page_view")
	c.JSON(http.StatusOK, dto.TrackResponse{Success: true})
}

// TrackDiscordJoin records a Discord-join beacon.
func (h *TrackingHandler) TrackDiscordJoin(c *gin.Context) {
	var req dto.TrackDiscordJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	source := req.Source
	if source == "" {
		source = tracking.DefaultJoinSource
	}

	_, err := h.service.TrackDiscordJoin(c.Request.Context(), tracking.TrackDiscordJoinInput{
		UserID: req.UserID,
		Source: source,
	})
	if err != nil {
		h.log.Error("Error tracking Discord join", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track Discord join"})
		return
	}

	middleware.CountBeacon("discord_join")
	c.JSON(http.StatusOK, dto.TrackResponse{Success: true})
}
