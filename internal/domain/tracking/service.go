package tracking

import (
	"context"
	"time"
)

type Service interface {
	TrackPageView(ctx context.Context, input TrackPageViewInput) (*PageView, error)
	GetPageViewStats(ctx context.Context) (PageViewStats, error)
	TrackDiscordJoin(ctx context.Context, input TrackDiscordJoinInput) (*DiscordJoin, error)
	GetDiscordJoinStats(ctx context.Context) (DiscordJoinStats, error)
}

type TrackPageViewInput struct {
	Page      string  `json:"page"`
	UserID    *uint   `json:"userId,omitempty"`
	UserAgent *string `json:"userAgent,omitempty"`
	IPAddress *string `json:"ipAddress,omitempty"`
}

type TrackDiscordJoinInput struct {
	UserID *uint  `json:"userId,omitempty"`
	Source string `json:"source"`
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) TrackPageView(ctx context.Context, input TrackPageViewInput) (*PageView, error) {
	view := &PageView{
		UserID:    input.UserID,
		Page:      input.Page,
		ViewedAt:  time.Now(),
		UserAgent: input.UserAgent,
		IPAddress: input.IPAddress,
	}

	if err := s.repo.CreatePageView(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) GetPageViewStats(ctx context.Context) (PageViewStats, error) {
	total, err := s.repo.CountPageViews(ctx)
	if err != nil {
		return PageViewStats{}, err
	}

	// todayViews counts rows since server-local midnight at call time.
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.repo.CountPageViewsSince(ctx, midnight)
	if err != nil {
		return PageViewStats{}, err
	}

	return PageViewStats{Total: total, TodayViews: today}, nil
}

func (s *service) TrackDiscordJoin(ctx context.Context, input TrackDiscordJoinInput) (*DiscordJoin, error) {
	source := input.Source
	if source == "" {
		source = DefaultJoinSource
	}

	join := &DiscordJoin{
		UserID:   input.UserID,
		JoinedAt: time.Now(),
		Source:   source,
	}

	if err := s.repo.CreateDiscordJoin(ctx, join); err != nil {
		return nil, err
	}
	return join, nil
}

func (s *service) GetDiscordJoinStats(ctx context.Context) (DiscordJoinStats, error) {
	total, err := s.repo.CountDiscordJoins(ctx)
	if err != nil {
		return DiscordJoinStats{}, err
	}

	// thisMonth counts joins whose timestamp falls in the current calendar
	// month and year, evaluated against wall-clock now. The window filter is
	// pushed down to the database; results match an in-process scan.
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	thisMonth, err := s.repo.CountDiscordJoinsBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return DiscordJoinStats{}, err
	}

	return DiscordJoinStats{Total: total, ThisMonth: thisMonth}, nil
}
