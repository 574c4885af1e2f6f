package tracking

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	CreatePageView(ctx context.Context, view *PageView) error
	CountPageViews(ctx context.Context) (int64, error)
	CountPageViewsSince(ctx context.Context, since time.Time) (int64, error)
	CreateDiscordJoin(ctx context.Context, join *DiscordJoin) error
	CountDiscordJoins(ctx context.Context) (int64, error)
	CountDiscordJoinsBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePageView(ctx context.Context, view *PageView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *repository) CountPageViews(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PageView{}).Count(&count).Error
	return count, err
}

func (r *repository) CountPageViewsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PageView{}).
		Where("viewed_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateDiscordJoin(ctx context.Context, join *DiscordJoin) error {
	return r.db.WithContext(ctx).Create(join).Error
}

func (r *repository) CountDiscordJoins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DiscordJoin{}).Count(&count).Error
	return count, err
}

func (r *repository) CountDiscordJoinsBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DiscordJoin{}).
		Where("joined_at >= ? AND joined_at < ?", start, end).
		Count(&count).Error
	return count, err
}
