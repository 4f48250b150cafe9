package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/parking-booking/internal/domain"
)

func TestParkingDeleteCascadesReservations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	parkingSvc := NewParkingSvc(f.parkings, nil, noopPublisher{})

	_, err := f.svc.Book(ctx, "u1", "p1", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")
	require.NoError(t, err)
	_, err = f.svc.Book(ctx, "u2", "p1", "2024-06-01T10:00:00Z", "2024-06-01T11:00:00Z")
	require.NoError(t, err)

	require.NoError(t, parkingSvc.Delete(ctx, "owner", domain.RoleOwner, "p1"))

	_, err = f.parkings.ByID(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	orphans, err := f.resvs.ListByParking(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestParkingDeleteForbiddenForStrangers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	parkingSvc := NewParkingSvc(f.parkings, nil, noopPublisher{})

	err := parkingSvc.Delete(ctx, "someone-else", domain.RoleUser, "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// admin may delete anything
	require.NoError(t, parkingSvc.Delete(ctx, "someone-else", domain.RoleAdmin, "p1"))
}

func TestParkingUpdateKeepsOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	parkingSvc := NewParkingSvc(f.parkings, nil, noopPublisher{})

	out, err := parkingSvc.Update(ctx, "owner", domain.RoleOwner, domain.Parking{
		ID: "p1", Title: "Renamed", PricePerHour: 500, OwnerID: "hijacker",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner", out.OwnerID)
	assert.Equal(t, "Renamed", out.Title)
	assert.Equal(t, int64(500), out.PricePerHour)

	// an update that omits optional fields clears them
	assert.Empty(t, out.Description)
	assert.Zero(t, out.Spaces)
}
