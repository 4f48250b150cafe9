package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/parking-booking/internal/middlewares"
	"github.com/you/parking-booking/internal/service"
)

type FavoriteHandler struct {
	svc *service.FavoriteSvc
}

func NewFavoriteHandler(s *service.FavoriteSvc) *FavoriteHandler {
	return &FavoriteHandler{svc: s}
}

// POST /v1/parkings/:id/favorite
func (h *FavoriteHandler) Add(c *gin.Context) {
	if err := h.svc.Add(c, middlewares.Subject(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /v1/parkings/:id/favorite
func (h *FavoriteHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c, middlewares.Subject(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	list, err := h.svc.List(c, middlewares.Subject(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parkings": list})
}
