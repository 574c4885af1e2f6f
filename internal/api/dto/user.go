package dto

import (
	"time"

	"github.com/DJSYT/MineCloud/internal/domain/user"
)

// CreateUserRequest is the registration body.
type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	DiscordID *string `json:"discordId"`
}

// UserResponse is a user as returned to clients.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	DiscordID *string   `json:"discordId,omitempty"`
	JoinedAt  time.Time `json:"joinedAt"`
	IsActive  bool      `json:"isActive"`
}

// UserToResponse maps a domain user to its API shape.
func UserToResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		DiscordID: u.DiscordID,
		JoinedAt:  u.JoinedAt,
		IsActive:  u.IsActive,
	}
}
