package routes

import (
	"github.com/DJSYT/MineCloud/internal/api/dto"
	"github.com/DJSYT/MineCloud/internal/api/handlers"
	"github.com/DJSYT/MineCloud/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserRoutes handles the setup of user routes
type UserRoutes struct {
	handler    *handlers.UserHandler
	validation *middleware.ValidationMiddleware
}

// NewUserRoutes creates a new UserRoutes instance
func NewUserRoutes(handler *handlers.UserHandler, validation *middleware.ValidationMiddleware) *UserRoutes {
	return &UserRoutes{handler: handler, validation: validation}
}

// RegisterRoutes registers the user endpoints
func (r *UserRoutes) RegisterRoutes(router *gin.Engine) {
	users := router.Group("/api/users")

	users.POST("",
		r.validation.ValidateRequest(dto.CreateUserRequest{}),
		r.handler.CreateUser)
	users.GET("/:id", r.handler.GetUser)
}
