package inquiry

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidStatus = errors.New("invalid inquiry status")

type Service interface {
	CreateInquiry(ctx context.Context, input CreateInquiryInput) (*ServiceInquiry, error)
	ListInquiries(ctx context.Context) ([]ServiceInquiry, error)
	UpdateInquiryStatus(ctx context.Context, id uint, status InquiryStatus) error
	GetStats(ctx context.Context) (Stats, error)
}

// CreateInquiryInput carries the business fields of a contact-form submission.
// Input is schema-validated at the HTTP boundary before it reaches this
// service; no business-rule checking happens here.
type CreateInquiryInput struct {
	ServiceType  string `json:"serviceType"`
	Message      string `json:"message"`
	ContactEmail string `json:"contactEmail"`
	UserID       *uint  `json:"userId,omitempty"`
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateInquiry(ctx context.Context, input CreateInquiryInput) (*ServiceInquiry, error) {
	inquiry := &ServiceInquiry{
		UserID:       input.UserID,
		ServiceType:  input.ServiceType,
		Message:      input.Message,
		ContactEmail: input.ContactEmail,
		CreatedAt:    time.Now(),
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

func (s *service) ListInquiries(ctx context.Context) ([]ServiceInquiry, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) UpdateInquiryStatus(ctx context.Context, id uint, status InquiryStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) GetStats(ctx context.Context) (Stats, error) {
	inquiries, err := s.repo.FindAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: int64(len(inquiries))}
	for _, i := range inquiries {
		switch i.Status {
		case StatusPending:
			stats.Pending++
		case StatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}
