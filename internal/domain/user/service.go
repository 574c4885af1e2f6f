package user

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

type Service interface {
	GetUser(ctx context.Context, id uint) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*User, error)
}

type CreateUserInput struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	DiscordID *string `json:"discordId,omitempty"`
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if input.Username == "" || input.Email == "" {
		return nil, ErrInvalidInput
	}

	user := &User{
		Username:  input.Username,
		Email:     input.Email,
		DiscordID: input.DiscordID,
		JoinedAt:  time.Now(),
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
