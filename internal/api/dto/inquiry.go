package dto

import (
	"time"

	"github.com/DJSYT/MineCloud/internal/domain/inquiry"
)

// CreateInquiryRequest is the contact-form submission body. Validated by the
// validation middleware before the handler runs.
type CreateInquiryRequest struct {
	ServiceType  string `json:"serviceType" validate:"required"`
	Message      string `json:"message" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	UserID       *uint  `json:"userId"`
}

// CreateInquiryResponse mirrors the response the contact form expects.
type CreateInquiryResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	InquiryID uint   `json:"inquiryId"`
}

// UpdateInquiryStatusRequest is the admin body for moving an inquiry through
// pending -> contacted -> completed.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// InquiryResponse is a single inquiry as returned to the admin listing.
type InquiryResponse struct {
	ID           uint      `json:"id"`
	UserID       *uint     `json:"userId,omitempty"`
	ServiceType  string    `json:"serviceType"`
	Message      string    `json:"message"`
	ContactEmail string    `json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
	Status       string    `json:"status"`
}

// InquiryListResponse wraps the admin listing.
type InquiryListResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
}

// InquiryToResponse maps a domain inquiry to its API shape.
func InquiryToResponse(i *inquiry.ServiceInquiry) InquiryResponse {
	return InquiryResponse{
		ID:           i.ID,
		UserID:       i.UserID,
		ServiceType:  i.ServiceType,
		Message:      i.Message,
		ContactEmail: i.ContactEmail,
		CreatedAt:    i.CreatedAt,
		Status:       string(i.Status),
	}
}
