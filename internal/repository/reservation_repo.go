package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/parking-booking/internal/domain"
)

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

func (r *ReservationRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Reservation{})
}

// overlapFilter narrows to reservations whose [start_time, end_time) range
// intersects the given half-open interval. Same inequality as
// domain.Interval.Overlaps.
func overlapFilter(qb *gorm.DB, iv domain.Interval) *gorm.DB {
	return qb.Where("start_time < ? AND end_time > ?", iv.End, iv.Start)
}

// CreateWithNoOverlap runs in a txn and serializes writers per parking, so
// the overlap check and the insert form one atomic unit.
func (r *ReservationRepo) CreateWithNoOverlap(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Row locks cannot guard rows that do not exist yet: two writers
		// booking a free slot would each see zero candidates and both
		// insert. The advisory lock is held until commit and covers every
		// API process sharing this Postgres. SQLite runs the whole write
		// transaction under a single lock on its own.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", res.ParkingID).Error; err != nil {
				return err
			}
		}
		qb := tx.Model(&domain.Reservation{}).Where("parking_id = ?", res.ParkingID)
		var existing domain.Reservation
		err := overlapFilter(qb, res.Interval()).Take(&existing).Error
		if err == nil {
			return domain.ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if res.ID == "" {
			res.ID = uuid.NewString()
		}
		return tx.Create(res).Error
	})
}

// AnyOverlap is the read-only availability probe. An error never means
// "available"; callers must propagate it.
func (r *ReservationRepo) AnyOverlap(ctx context.Context, parkingID string, iv domain.Interval) (bool, error) {
	var n int64
	qb := r.db.WithContext(ctx).Model(&domain.Reservation{}).Where("parking_id = ?", parkingID)
	if err := overlapFilter(qb, iv).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ReservationRepo) ByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepo) ListByParking(ctx context.Context, parkingID string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("parking_id = ?", parkingID).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}
