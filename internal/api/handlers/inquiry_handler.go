package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DJSYT/MineCloud/internal/api/dto"
	"github.com/DJSYT/MineCloud/internal/api/middleware"
	"github.com/DJSYT/MineCloud/internal/domain/inquiry"
	"github.com/DJSYT/MineCloud/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InquiryHandler struct {
	service inquiry.Service
	log     *logger.Logger
}

func NewInquiryHandler(service inquiry.Service, log *logger.Logger) *InquiryHandler {
	return &InquiryHandler{service: service, log: log}
}

// CreateInquiry handles a contact-form submission. The body has already been
// schema-validated by the validation middleware.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	model, exists := c.Get(middleware.ValidatedModelKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
		return
	}
	req := model.(*dto.CreateInquiryRequest)

	created, err := h.service.CreateInquiry(c.Request.Context(), inquiry.CreateInquiryInput{
		ServiceType:  req.ServiceType,
		Message:      req.Message,
		ContactEmail: req.ContactEmail,
		UserID:       req.UserID,
	})
	if err != nil {
		h.log.Error("Error creating service inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
		return
	}

	c.JSON(http.StatusOK, dto.CreateInquiryResponse{
		Success:   true,
		Message:   "Thank you for your inquiry! We'll get back to you soon.",
		InquiryID: created.ID,
	})
}

// ListInquiries returns every inquiry in insertion order (admin endpoint).
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.service.ListInquiries(c.Request.Context())
	if err != nil {
		h.log.Error("Error listing service inquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	resp := dto.InquiryListResponse{Inquiries: make([]dto.InquiryResponse, 0, len(inquiries))}
	for i := range inquiries {
		resp.Inquiries = append(resp.Inquiries, dto.InquiryToResponse(&inquiries[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateInquiryStatus moves an inquiry to a new handling status (admin
// endpoint). An unknown id is reported as 404 rather than silently ignored.
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry ID"})
		return
	}

	model, exists := c.Get(middleware.ValidatedModelKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}
	req := model.(*dto.UpdateInquiryStatusRequest)

	err = h.service.UpdateInquiryStatus(c.Request.Context(), uint(id), inquiry.InquiryStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, inquiry.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, inquiry.ErrInquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.log.Error("Error updating inquiry status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
