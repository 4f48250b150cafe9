package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/you/parking-booking/internal/domain"
)

type FavoriteRepo struct{ db *gorm.DB }

func NewFavoriteRepo(db *gorm.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

func (r *FavoriteRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}

// Add is idempotent: re-favoriting an already favorited parking is a no-op.
func (r *FavoriteRepo) Add(ctx context.Context, userID, parkingID string) error {
	f := domain.Favorite{ID: uuid.NewString(), UserID: userID, ParkingID: parkingID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&f).Error
}

func (r *FavoriteRepo) Remove(ctx context.Context, userID, parkingID string) error {
	return r.db.WithContext(ctx).
		Delete(&domain.Favorite{}, "user_id = ? AND parking_id = ?", userID, parkingID).Error
}

func (r *FavoriteRepo) ByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}
