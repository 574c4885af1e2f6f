package inquiry

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("service inquiry not found")

type Repository interface {
	Create(ctx context.Context, inquiry *ServiceInquiry) error
	FindAll(ctx context.Context) ([]ServiceInquiry, error)
	UpdateStatus(ctx context.Context, id uint, status InquiryStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inquiry *ServiceInquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ServiceInquiry, error) {
	var inquiries []ServiceInquiry
	result := r.db.WithContext(ctx).Order("id").Find(&inquiries)
	if result.Error != nil {
		return nil, result.Error
	}
	return inquiries, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status InquiryStatus) error {
	result := r.db.WithContext(ctx).
		Model(&ServiceInquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}
