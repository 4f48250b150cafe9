package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/parking-booking/internal/middlewares"
	"github.com/you/parking-booking/internal/service"
)

type ReservationHandler struct {
	svc *service.ReservationSvc
}

func NewReservationHandler(s *service.ReservationSvc) *ReservationHandler {
	return &ReservationHandler{svc: s}
}

// POST /v1/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var in struct {
		ParkingID string `json:"parking_id" binding:"required"`
		StartISO  string `json:"start_iso" binding:"required"` // RFC3339
		EndISO    string `json:"end_iso"   binding:"required"` // RFC3339
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Book(c, middlewares.Subject(c), in.ParkingID, in.StartISO, in.EndISO)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": res})
}

// GET /v1/reservations — the caller's own reservations, chronological.
func (h *ReservationHandler) ListMine(c *gin.Context) {
	list, err := h.svc.ListByUser(c, middlewares.Subject(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}

// GET /v1/parkings/:id/reservations
func (h *ReservationHandler) ListByParking(c *gin.Context) {
	list, err := h.svc.ListByParking(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}

// GET /v1/parkings/:id/availability?start=RFC3339&end=RFC3339
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	available, err := h.svc.CheckAvailability(c, c.Param("id"), c.Query("start"), c.Query("end"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}
