package inquiry

import (
	"time"

	"gorm.io/gorm"
)

// InquiryStatus represents the handling state of a service inquiry
type InquiryStatus string

const (
	StatusPending   InquiryStatus = "pending"
	StatusContacted InquiryStatus = "contacted"
	StatusCompleted InquiryStatus = "completed"
)

func (s InquiryStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusCompleted:
		return true
	}
	return false
}

// ServiceInquiry represents a contact-form submission expressing interest in
// a named service category (plugin_development, website_development, ...).
// Status is the only field that is ever mutated after insert.
type ServiceInquiry struct {
	ID           uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       *uint         `json:"userId,omitempty" gorm:"index"`
	ServiceType  string        `json:"serviceType" gorm:"not null"`
	Message      string        `json:"message" gorm:"type:text;not null"`
	ContactEmail string        `json:"contactEmail" gorm:"not null"`
	CreatedAt    time.Time     `json:"createdAt" gorm:"not null;default:current_timestamp"`
	Status       InquiryStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
}

func (ServiceInquiry) TableName() string {
	return "service_inquiries"
}

// BeforeCreate is called before inserting a new inquiry record
func (i *ServiceInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.Status == "" {
		i.Status = StatusPending
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	return nil
}

// Stats summarizes the inquiry table by status for the analytics endpoint.
type Stats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}
