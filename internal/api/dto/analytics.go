package dto

import (
	"github.com/DJSYT/MineCloud/internal/domain/inquiry"
	"github.com/DJSYT/MineCloud/internal/domain/tracking"
)

// AnalyticsResponse is the aggregate view served to the admin dashboard.
// It is built from three independent reads; if any of them fails the whole
// request fails.
type AnalyticsResponse struct {
	PageViews        tracking.PageViewStats    `json:"pageViews"`
	DiscordJoins     tracking.DiscordJoinStats `json:"discordJoins"`
	ServiceInquiries inquiry.Stats             `json:"serviceInquiries"`
}
