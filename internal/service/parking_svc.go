package service

import (
	"context"
	"log"

	"github.com/you/parking-booking/internal/cache"
	"github.com/you/parking-booking/internal/domain"
	"github.com/you/parking-booking/internal/events"
	"github.com/you/parking-booking/internal/repository"
)

type ParkingSvc struct {
	repo  *repository.ParkingRepo
	cache *cache.ParkingCache // nil disables caching
	pub   EventPublisher
}

func NewParkingSvc(r *repository.ParkingRepo, c *cache.ParkingCache, pub EventPublisher) *ParkingSvc {
	return &ParkingSvc{repo: r, cache: c, pub: pub}
}

func (s *ParkingSvc) Create(ctx context.Context, in domain.Parking) (*domain.Parking, error) {
	if in.OwnerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := s.repo.Create(ctx, &in); err != nil {
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, events.RKParkingCreated, events.ParkingCreated{
		ParkingID: in.ID, OwnerID: in.OwnerID, Title: in.Title,
	})
	return &in, nil
}

func (s *ParkingSvc) Get(ctx context.Context, id string) (*domain.Parking, error) {
	if s.cache != nil {
		if p, err := s.cache.Get(id); err == nil {
			return p, nil
		} else if !cache.IsMiss(err) {
			log.Printf("[parking] cache get %s: %v", id, err)
		}
	}
	p, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(p); err != nil {
			log.Printf("[parking] cache set %s: %v", id, err)
		}
	}
	return p, nil
}

func (s *ParkingSvc) List(ctx context.Context, page, size int32, country, category string) ([]domain.Parking, int64, error) {
	return s.repo.List(ctx, page, size, country, category)
}

func (s *ParkingSvc) ByOwner(ctx context.Context, ownerID string) ([]domain.Parking, error) {
	return s.repo.ByOwner(ctx, ownerID)
}

// Update lets the owner (or an admin) change listing attributes. OwnerID is
// never reassigned.
func (s *ParkingSvc) Update(ctx context.Context, actorID string, actorRole domain.Role, in domain.Parking) (*domain.Parking, error) {
	cur, err := s.repo.ByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if cur.OwnerID != actorID && actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	in.OwnerID = cur.OwnerID
	if err := s.repo.Update(ctx, &in); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(in.ID)
	}
	return s.repo.ByID(ctx, in.ID)
}

// Delete removes a parking and, as a cascade, every reservation made on it.
func (s *ParkingSvc) Delete(ctx context.Context, actorID string, actorRole domain.Role, id string) error {
	cur, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if cur.OwnerID != actorID && actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	dropped, err := s.repo.DeleteWithReservations(ctx, id)
	if err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(id)
	}
	_ = s.pub.PublishJSON(ctx, events.RKParkingDeleted, events.ParkingDeleted{
		ParkingID: id, ReservationsDropped: int(dropped),
	})
	return nil
}
