package tracking

import (
	"time"

	"gorm.io/gorm"
)

// DefaultJoinSource is recorded when a Discord-join beacon does not name one.
const DefaultJoinSource = "website"

// DiscordJoin is one beacon hit recording that somebody followed the Discord
// invite. Immutable after insert.
type DiscordJoin struct {
	ID       uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   *uint     `json:"userId,omitempty" gorm:"index"`
	JoinedAt time.Time `json:"joinedAt" gorm:"not null;default:current_timestamp;index"`
	Source   string    `json:"source" gorm:"not null;default:'website'"`
}

func (DiscordJoin) TableName() string {
	return "discord_joins"
}

// BeforeCreate is called before inserting a new join record
func (j *DiscordJoin) BeforeCreate(tx *gorm.DB) error {
	if j.Source == "" {
		j.Source = DefaultJoinSource
	}
	if j.JoinedAt.IsZero() {
		j.JoinedAt = time.Now()
	}
	return nil
}

// PageView is one beacon hit for a page on the site. Immutable after insert.
type PageView struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    *uint     `json:"userId,omitempty" gorm:"index"`
	Page      string    `json:"page" gorm:"not null"`
	ViewedAt  time.Time `json:"viewedAt" gorm:"not null;default:current_timestamp;index"`
	UserAgent *string   `json:"userAgent,omitempty"`
	IPAddress *string   `json:"ipAddress,omitempty" gorm:"column:ip_address"`
}

func (PageView) TableName() string {
	return "page_views"
}

// BeforeCreate is called before inserting a new page view record
func (v *PageView) BeforeCreate(tx *gorm.DB) error {
	if v.ViewedAt.IsZero() {
		v.ViewedAt = time.Now()
	}
	return nil
}

// PageViewStats holds the aggregate counts served by the analytics endpoint.
type PageViewStats struct {
	Total      int64 `json:"total"`
	TodayViews int64 `json:"todayViews"`
}

// DiscordJoinStats holds the aggregate join counts.
type DiscordJoinStats struct {
	Total     int64 `json:"total"`
	ThisMonth int64 `json:"thisMonth"`
}
