package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/parking-booking/internal/domain"
	"github.com/you/parking-booking/internal/middlewares"
	"github.com/you/parking-booking/internal/service"
)

type ParkingHandler struct {
	svc *service.ParkingSvc
}

func NewParkingHandler(s *service.ParkingSvc) *ParkingHandler {
	return &ParkingHandler{svc: s}
}

type parkingInput struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	PricePerHour int64   `json:"price_per_hour" binding:"required"`
	Spaces       int32   `json:"spaces"`
	Country      string  `json:"country"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	ImageURL     string  `json:"image_url"`
	Category     string  `json:"category"`
}

func (in parkingInput) toDomain() domain.Parking {
	return domain.Parking{
		Title:        in.Title,
		Description:  in.Description,
		PricePerHour: in.PricePerHour,
		Spaces:       in.Spaces,
		Country:      in.Country,
		Lat:          in.Lat,
		Lng:          in.Lng,
		ImageURL:     in.ImageURL,
		Category:     in.Category,
	}
}

// POST /v1/parkings (OWNER/ADMIN)
func (h *ParkingHandler) Create(c *gin.Context) {
	var in parkingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := in.toDomain()
	p.OwnerID = middlewares.Subject(c)
	out, err := h.svc.Create(c, p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"parking": out})
}

// GET /v1/parkings?page=1&page_size=20&country=...&category=...
func (h *ParkingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	list, total, err := h.svc.List(c, int32(page-1), int32(size), c.Query("country"), c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parkings": list, "total": total})
}

// GET /v1/parkings/:id
func (h *ParkingHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parking": p})
}

// GET /v1/myparkings
func (h *ParkingHandler) ListMine(c *gin.Context) {
	list, err := h.svc.ByOwner(c, middlewares.Subject(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parkings": list})
}

// PUT /v1/parkings/:id (owner or ADMIN)
func (h *ParkingHandler) Update(c *gin.Context) {
	var in parkingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := in.toDomain()
	p.ID = c.Param("id")
	out, err := h.svc.Update(c, middlewares.Subject(c), domain.Role(middlewares.Role(c)), p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parking": out})
}

// DELETE /v1/parkings/:id (owner or ADMIN)
func (h *ParkingHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c, middlewares.Subject(c), domain.Role(middlewares.Role(c)), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
