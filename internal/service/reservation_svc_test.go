package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/parking-booking/internal/domain"
	"github.com/you/parking-booking/internal/repository"
)

type noopPublisher struct{}

func (noopPublisher) PublishJSON(ctx context.Context, key string, v any) error { return nil }

type svcFixture struct {
	db       *gorm.DB
	resvs    *repository.ReservationRepo
	parkings *repository.ParkingRepo
	svc      *ReservationSvc
}

func newFixture(t *testing.T) *svcFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	resvs := repository.NewReservationRepo(gdb)
	parkings := repository.NewParkingRepo(gdb)
	require.NoError(t, resvs.Migrate())
	require.NoError(t, parkings.Migrate())

	require.NoError(t, parkings.Create(context.Background(), &domain.Parking{
		ID: "p1", OwnerID: "owner", Title: "Garage on Main", PricePerHour: 300,
		Description: "Covered spot", Spaces: 2,
	}))

	return &svcFixture{
		db:       gdb,
		resvs:    resvs,
		parkings: parkings,
		svc:      NewReservationSvc(resvs, parkings, noopPublisher{}),
	}
}

func TestBookRejectsUnauthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Book(context.Background(), "", "p1", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	list, err := f.resvs.ListByParking(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookRejectsInvalidInterval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := [][2]string{
		{"2024-06-01T10:00:00Z", "2024-06-01T09:00:00Z"}, // reversed
		{"2024-06-01T10:00:00Z", "2024-06-01T10:00:00Z"}, // zero length
		{"not-a-time", "2024-06-01T10:00:00Z"},           // malformed
	}
	for _, tc := range cases {
		_, err := f.svc.Book(ctx, "u1", "p1", tc[0], tc[1])
		assert.ErrorIs(t, err, domain.ErrInvalidInterval)
	}

	list, err := f.resvs.ListByParking(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookUnknownParking(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Book(context.Background(), "u1", "nope", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookConflictIsDistinctFromFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Book(ctx, "u1", "p1", "2024-06-01T09:00:00Z", "2024-06-01T11:00:00Z")
	require.NoError(t, err)

	_, err = f.svc.Book(ctx, "u2", "p1", "2024-06-01T10:00:00Z", "2024-06-01T12:00:00Z")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrInvalidInterval)

	list, err := f.resvs.ListByParking(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookBackToBackSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Book(ctx, "u1", "p1", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")
	require.NoError(t, err)
	_, err = f.svc.Book(ctx, "u2", "p1", "2024-06-01T10:00:00Z", "2024-06-01T11:00:00Z")
	require.NoError(t, err)
}

// Two concurrent Book calls for the same interval: exactly one wins.
func TestBookConcurrentOverlapSingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const callers = 8
	results := make([]error, callers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := f.svc.Book(ctx, fmt.Sprintf("u%d", i), "p1",
				"2024-06-01T09:00:00Z", "2024-06-01T11:00:00Z")
			results[i] = err
		}(i)
	}
	close(start)
	wg.Wait()

	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, conflicts)

	list, err := f.resvs.ListByParking(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCheckAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.svc.CheckAvailability(ctx, "p1", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.svc.Book(ctx, "u1", "p1", "2024-06-01T09:00:00Z", "2024-06-01T11:00:00Z")
	require.NoError(t, err)

	ok, err = f.svc.CheckAvailability(ctx, "p1", "2024-06-01T10:00:00Z", "2024-06-01T12:00:00Z")
	require.NoError(t, err)
	assert.False(t, ok)

	// back-to-back stays available
	ok, err = f.svc.CheckAvailability(ctx, "p1", "2024-06-01T11:00:00Z", "2024-06-01T12:00:00Z")
	require.NoError(t, err)
	assert.True(t, ok)
}

// An unknown parking id is not "available"; the read path rejects it the
// same way booking does.
func TestCheckAvailabilityUnknownParking(t *testing.T) {
	f := newFixture(t)

	ok, err := f.svc.CheckAvailability(context.Background(), "nope", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, ok)
}

// A failed availability query must never read as "available".
func TestCheckAvailabilityStoreFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Exec("DROP TABLE reservations").Error)

	ok, err := f.svc.CheckAvailability(ctx, "p1", "2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestListByUserChronological(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slots := [][2]string{
		{"2024-06-01T14:00:00Z", "2024-06-01T15:00:00Z"},
		{"2024-06-01T09:00:00Z", "2024-06-01T10:00:00Z"},
		{"2024-06-01T11:00:00Z", "2024-06-01T12:00:00Z"},
	}
	for _, s := range slots {
		_, err := f.svc.Book(ctx, "u1", "p1", s[0], s[1])
		require.NoError(t, err)
	}

	list, err := f.svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, len(slots))
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].StartTime.Before(list[i].StartTime))
	}

	_, err = f.svc.ListByUser(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
