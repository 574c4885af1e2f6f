package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DJSYT/MineCloud/internal/api/dto"
	"github.com/DJSYT/MineCloud/internal/api/middleware"
	"github.com/DJSYT/MineCloud/internal/domain/user"
	"github.com/DJSYT/MineCloud/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	service user.Service
	log     *logger.Logger
}

func NewUserHandler(service user.Service, log *logger.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// CreateUser registers a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	model, exists := c.Get(middleware.ValidatedModelKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	req := model.(*dto.CreateUserRequest)

	created, err := h.service.CreateUser(c.Request.Context(), user.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		DiscordID: req.DiscordID,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicateUser):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error("Error creating user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.UserToResponse(created))
}

// GetUser looks a user up by id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	found, err := h.service.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Error fetching user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, dto.UserToResponse(found))
}
