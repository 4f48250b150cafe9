package service

import (
	"context"
	"errors"

	"github.com/you/parking-booking/internal/domain"
	"github.com/you/parking-booking/internal/repository"
)

type FavoriteSvc struct {
	repo     *repository.FavoriteRepo
	parkings *repository.ParkingRepo
}

func NewFavoriteSvc(r *repository.FavoriteRepo, p *repository.ParkingRepo) *FavoriteSvc {
	return &FavoriteSvc{repo: r, parkings: p}
}

func (s *FavoriteSvc) Add(ctx context.Context, userID, parkingID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if _, err := s.parkings.ByID(ctx, parkingID); err != nil {
		return err
	}
	return s.repo.Add(ctx, userID, parkingID)
}

func (s *FavoriteSvc) Remove(ctx context.Context, userID, parkingID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	return s.repo.Remove(ctx, userID, parkingID)
}

// List returns the favorited parkings themselves, skipping favorites whose
// parking was deleted since.
func (s *FavoriteSvc) List(ctx context.Context, userID string) ([]domain.Parking, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	favs, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Parking, 0, len(favs))
	for _, f := range favs {
		p, err := s.parkings.ByID(ctx, f.ParkingID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}
