package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/parking-booking/internal/middlewares"
	"github.com/you/parking-booking/internal/service"
)

type UserHandler struct {
	svc *service.UserSvc
}

func NewUserHandler(s *service.UserSvc) *UserHandler {
	return &UserHandler{svc: s}
}

// GET /v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.svc.GetByID(c, middlewares.Subject(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// PUT /v1/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var in struct {
		Name      string `json:"name"`
		Phone     string `json:"phone"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Update(c, middlewares.Subject(c), in.Name, in.Phone, in.AvatarURL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
