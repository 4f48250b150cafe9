package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/parking-booking/internal/domain"
)

type ParkingRepo struct{ db *gorm.DB }

func NewParkingRepo(db *gorm.DB) *ParkingRepo {
	return &ParkingRepo{db: db}
}

func (r *ParkingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Parking{})
}

func (r *ParkingRepo) Create(ctx context.Context, p *domain.Parking) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ParkingRepo) ByID(ctx context.Context, id string) (*domain.Parking, error) {
	var p domain.Parking
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ParkingRepo) List(ctx context.Context, page, size int32, country, category string) ([]domain.Parking, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Parking{})
	if country != "" {
		qb = qb.Where("country = ?", country)
	}
	if category != "" {
		qb = qb.Where("category = ?", category)
	}
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Parking
	if err := qb.Order("created_at DESC").Limit(int(size)).Offset(int(page * size)).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ParkingRepo) ByOwner(ctx context.Context, ownerID string) ([]domain.Parking, error) {
	var out []domain.Parking
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// Update overwrites all listing attributes, zero values included; a struct
// Updates would silently skip cleared fields. OwnerID is not touched.
func (r *ParkingRepo) Update(ctx context.Context, p *domain.Parking) error {
	return r.db.WithContext(ctx).Model(&domain.Parking{}).Where("id = ?", p.ID).
		Select("title", "description", "price_per_hour", "spaces", "country",
			"lat", "lng", "image_url", "category").
		Updates(p).Error
}

// DeleteWithReservations removes a parking and its reservations in one txn,
// so a failure leaves both intact. Returns how many reservations went away.
func (r *ParkingRepo) DeleteWithReservations(ctx context.Context, id string) (int64, error) {
	var dropped int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Reservation{}, "parking_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		dropped = res.RowsAffected
		return tx.Delete(&domain.Parking{}, "id = ?", id).Error
	})
	if err != nil {
		return 0, err
	}
	return dropped, nil
}
