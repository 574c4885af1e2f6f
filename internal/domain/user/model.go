package user

import (
	"time"

	"gorm.io/gorm"
)

// User represents a site visitor who registered, typically on their way into
// the Discord community.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex:idx_users_username;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex:idx_users_email;not null"`
	DiscordID *string   `json:"discordId,omitempty" gorm:"column:discord_id;uniqueIndex:idx_users_discord_id"`
	JoinedAt  time.Time `json:"joinedAt" gorm:"not null;default:current_timestamp"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate is called before inserting a new user record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.JoinedAt.IsZero() {
		u.JoinedAt = time.Now()
	}
	return nil
}
