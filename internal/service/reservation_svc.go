package service

import (
	"context"
	"time"

	"github.com/you/parking-booking/internal/domain"
	"github.com/you/parking-booking/internal/events"
	"github.com/you/parking-booking/internal/repository"
)

// EventPublisher is what services need from pkg/mq.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type ReservationSvc struct {
	repo     *repository.ReservationRepo
	parkings *repository.ParkingRepo
	pub      EventPublisher
	locks    *resourceLocks
}

func NewReservationSvc(r *repository.ReservationRepo, p *repository.ParkingRepo, pub EventPublisher) *ReservationSvc {
	return &ReservationSvc{repo: r, parkings: p, pub: pub, locks: newResourceLocks()}
}

func parseInterval(startISO, endISO string) (domain.Interval, error) {
	st, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return domain.Interval{}, domain.ErrInvalidInterval
	}
	et, err := time.Parse(time.RFC3339, endISO)
	if err != nil {
		return domain.Interval{}, domain.ErrInvalidInterval
	}
	return domain.NewInterval(st, et)
}

// Book creates a reservation unless the interval overlaps an existing one.
// The check and the insert run under the per-parking lock in this process
// and, on Postgres, under a per-parking advisory lock shared by every
// process, so two concurrent calls for overlapping intervals cannot both
// succeed.
func (s *ReservationSvc) Book(ctx context.Context, userID, parkingID, startISO, endISO string) (*domain.Reservation, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	iv, err := parseInterval(startISO, endISO)
	if err != nil {
		return nil, err
	}

	s.locks.lock(parkingID)
	defer s.locks.unlock(parkingID)

	if _, err := s.parkings.ByID(ctx, parkingID); err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ParkingID: parkingID,
		UserID:    userID,
		StartTime: iv.Start,
		EndTime:   iv.End,
	}
	if err := s.repo.CreateWithNoOverlap(ctx, res); err != nil {
		return nil, err
	}

	_ = s.pub.PublishJSON(ctx, events.RKReservationCreated, events.ReservationCreated{
		ReservationID: res.ID,
		UserID:        res.UserID,
		ParkingID:     res.ParkingID,
		Start:         res.StartTime.Unix(),
		End:           res.EndTime.Unix(),
	})
	return res, nil
}

// CheckAvailability is read-only. A store failure propagates; it never
// collapses into "available", and an unknown parking is not "available"
// either.
func (s *ReservationSvc) CheckAvailability(ctx context.Context, parkingID, startISO, endISO string) (bool, error) {
	iv, err := parseInterval(startISO, endISO)
	if err != nil {
		return false, err
	}
	if _, err := s.parkings.ByID(ctx, parkingID); err != nil {
		return false, err
	}
	taken, err := s.repo.AnyOverlap(ctx, parkingID, iv)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (s *ReservationSvc) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *ReservationSvc) ListByParking(ctx context.Context, parkingID string) ([]domain.Reservation, error) {
	return s.repo.ListByParking(ctx, parkingID)
}
