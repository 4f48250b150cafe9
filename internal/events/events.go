package events

import (
	"encoding/json"
	"fmt"
)

const (
	RKReservationCreated = "reservation.created"

	RKParkingCreated = "parking.created"
	RKParkingDeleted = "parking.deleted"
)

type ReservationCreated struct {
	ReservationID string `json:"reservation_id"`
	UserID        string `json:"user_id"`
	ParkingID     string `json:"parking_id"`
	Start         int64  `json:"start"` // unix seconds
	End           int64  `json:"end"`
}

type ParkingCreated struct {
	ParkingID string `json:"parking_id"`
	OwnerID   string `json:"owner_id"`
	Title     string `json:"title"`
}

type ParkingDeleted struct {
	ParkingID string `json:"parking_id"`
	// Reservations removed by the cascade, for the "your booking was
	// cancelled" notice.
	ReservationsDropped int `json:"reservations_dropped"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
