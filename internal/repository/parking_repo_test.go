package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/parking-booking/internal/domain"
)

func parkingFixture(t *testing.T) (*ParkingRepo, *ReservationRepo) {
	t.Helper()
	gdb := testDB(t)
	parkings := NewParkingRepo(gdb)
	resvs := NewReservationRepo(gdb)
	require.NoError(t, parkings.Migrate())
	require.NoError(t, resvs.Migrate())
	return parkings, resvs
}

// Clearing a field on update must stick; an empty description is a value,
// not an omission.
func TestParkingUpdateWritesZeroValues(t *testing.T) {
	parkings, _ := parkingFixture(t)
	ctx := context.Background()

	p := &domain.Parking{
		ID: "p1", OwnerID: "owner", Title: "Garage on Main",
		Description: "Covered spot", Spaces: 4, PricePerHour: 350,
	}
	require.NoError(t, parkings.Create(ctx, p))

	require.NoError(t, parkings.Update(ctx, &domain.Parking{
		ID: "p1", OwnerID: "someone-else", Title: "Garage on Main",
	}))

	got, err := parkings.ByID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, got.Description)
	assert.Zero(t, got.Spaces)
	assert.Zero(t, got.PricePerHour)
	assert.Equal(t, "owner", got.OwnerID)
}

func TestDeleteWithReservationsCascades(t *testing.T) {
	parkings, resvs := parkingFixture(t)
	ctx := context.Background()

	require.NoError(t, parkings.Create(ctx, &domain.Parking{ID: "p1", OwnerID: "owner", Title: "Garage"}))
	require.NoError(t, parkings.Create(ctx, &domain.Parking{ID: "p2", OwnerID: "owner", Title: "Lot"}))
	require.NoError(t, resvs.CreateWithNoOverlap(ctx, newResv(t, "p1", "u1", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")))
	require.NoError(t, resvs.CreateWithNoOverlap(ctx, newResv(t, "p1", "u2", "2024-06-01T10:00:00Z", "2024-06-01T11:00:00Z")))
	require.NoError(t, resvs.CreateWithNoOverlap(ctx, newResv(t, "p2", "u1", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")))

	dropped, err := parkings.DeleteWithReservations(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, dropped)

	_, err = parkings.ByID(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	gone, err := resvs.ListByParking(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := resvs.ListByParking(ctx, "p2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

// A failure mid-delete rolls back the reservation sweep too.
func TestDeleteWithReservationsAtomic(t *testing.T) {
	gdb := testDB(t)
	parkings := NewParkingRepo(gdb)
	resvs := NewReservationRepo(gdb)
	require.NoError(t, parkings.Migrate())
	require.NoError(t, resvs.Migrate())
	ctx := context.Background()

	require.NoError(t, parkings.Create(ctx, &domain.Parking{ID: "p1", OwnerID: "owner", Title: "Garage"}))
	require.NoError(t, resvs.CreateWithNoOverlap(ctx, newResv(t, "p1", "u1", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")))

	require.NoError(t, gdb.Exec("DROP TABLE parkings").Error)

	_, err := parkings.DeleteWithReservations(ctx, "p1")
	require.Error(t, err)

	still, err := resvs.ListByParking(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, still, 1)
}
