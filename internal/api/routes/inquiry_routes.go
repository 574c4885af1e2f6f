package routes

import (
	"github.com/DJSYT/MineCloud/internal/api/dto"
	"github.com/DJSYT/MineCloud/internal/api/handlers"
	"github.com/DJSYT/MineCloud/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// InquiryRoutes handles the setup of service-inquiry routes
type InquiryRoutes struct {
	handler    *handlers.InquiryHandler
	validation *middleware.ValidationMiddleware
}

// NewInquiryRoutes creates a new InquiryRoutes instance
func NewInquiryRoutes(handler *handlers.InquiryHandler, validation *middleware.ValidationMiddleware) *InquiryRoutes {
	return &InquiryRoutes{handler: handler, validation: validation}
}

// RegisterRoutes registers the contact-form endpoint and the admin surface
func (r *InquiryRoutes) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.POST("/service-inquiry",
		r.validation.ValidateRequest(dto.CreateInquiryRequest{}),
		r.handler.CreateInquiry)

	api.GET("/inquiries", r.handler.ListInquiries)
	api.PATCH("/inquiries/:id/status",
		r.validation.ValidateRequest(dto.UpdateInquiryStatusRequest{}),
		r.handler.UpdateInquiryStatus)
}
