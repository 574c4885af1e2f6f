package handlers

import (
	"net/http"

	"github.com/DJSYT/MineCloud/internal/api/dto"
	"github.com/DJSYT/MineCloud/internal/domain/inquiry"
	"github.com/DJSYT/MineCloud/internal/domain/tracking"
	"github.com/DJSYT/MineCloud/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	trackingSvc tracking.Service
	inquirySvc  inquiry.Service
	log         *logger.Logger
}

func NewAnalyticsHandler(trackingSvc tracking.Service, inquirySvc inquiry.Service, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		trackingSvc: trackingSvc,
		inquirySvc:  inquirySvc,
		log:         log,
	}
}

// GetAnalytics aggregates page-view, Discord-join and inquiry stats. The
// three reads are independent but there is no best-effort result: any failing
// read fails the request.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()

	pageViews, err := h.trackingSvc.GetPageViewStats(ctx)
	if err != nil {
		h.log.Error("Error fetching page view stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	discordJoins, err := h.trackingSvc.GetDiscordJoinStats(ctx)
	if err != nil {
		h.log.Error("Error fetching Discord join stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	inquiries, err := h.inquirySvc.GetStats(ctx)
	if err != nil {
		h.log.Error("Error fetching inquiry stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.AnalyticsResponse{
		PageViews:        pageViews,
		DiscordJoins:     discordJoins,
		ServiceInquiries: inquiries,
	})
}
