package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/domain"
)

type fakeRepo struct {
	reservations []*domain.Reservation
	err          error
	gotFilter    domain.RoomReservationsFilter
}

func (f *fakeRepo) GetByRoomWithFilter(_ context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	f.gotFilter = filter
	return f.reservations, f.err
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testRooms = []domain.Room{
	{ID: domain.RoomTerminalA, DisplayName: "Terminal A", DefaultEngineer: "Murda", EngineerID: "engineer-murda"},
}

func newTestUseCase(repo *fakeRepo, now time.Time) *UseCase {
	engine := availability.NewEngine(domain.NewRegistry(testRooms), availability.Config{
		MinBookingHours: 2,
	})
	uc := NewUseCase(repo, engine, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_EmptyScheduleAllAvailable(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, day(1))

	result, err := uc.Execute(context.Background(), &Request{
		RoomID:        domain.RoomTerminalA,
		Date:          day(2),
		DurationHours: 2,
		WithEngineer:  true,
	})

	require.NoError(t, err)
	require.Len(t, result.Slots, 24)
	for _, slot := range result.Slots {
		assert.True(t, slot.Available, "slot %s should be free", slot.StartHour)
	}
}

func TestExecute_OccupiedHoursMarkedBusy(t *testing.T) {
	repo := &fakeRepo{
		reservations: []*domain.Reservation{
			{
				ID:     "res-1",
				RoomID: domain.RoomTerminalA,
				Start:  day(2).Add(14 * time.Hour),
				End:    day(2).Add(16 * time.Hour),
				Status: domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, day(1))

	result, err := uc.Execute(context.Background(), &Request{
		RoomID:        domain.RoomTerminalA,
		Date:          day(2),
		DurationHours: 2,
		WithEngineer:  true,
	})

	require.NoError(t, err)
	require.Len(t, result.Slots, 24)
	// A 2h session starting at 13, 14 or 15 overlaps [14, 16)
	assert.True(t, result.Slots[12].Available)
	assert.False(t, result.Slots[13].Available)
	assert.False(t, result.Slots[14].Available)
	assert.False(t, result.Slots[15].Available)
	assert.True(t, result.Slots[16].Available)
}

func TestExecute_PastHoursMarkedBusy(t *testing.T) {
	repo := &fakeRepo{}
	// Querying today at noon: the morning grid is gone
	uc := newTestUseCase(repo, day(2).Add(12*time.Hour))

	result, err := uc.Execute(context.Background(), &Request{
		RoomID:        domain.RoomTerminalA,
		Date:          day(2),
		DurationHours: 2,
		WithEngineer:  true,
	})

	require.NoError(t, err)
	assert.False(t, result.Slots[11].Available)
	assert.True(t, result.Slots[12].Available)
}

func TestExecute_SnapshotWindowCoversGridTail(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, day(1))

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:        domain.RoomTerminalA,
		Date:          day(2),
		DurationHours: 3,
		WithEngineer:  true,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.gotFilter.From)
	require.NotNil(t, repo.gotFilter.To)
	assert.Equal(t, day(2), *repo.gotFilter.From)
	// The 23:00 candidate runs 3h past midnight, the window must include it
	assert.Equal(t, day(3).Add(3*time.Hour), *repo.gotFilter.To)
}

func TestExecute_UnknownRoom(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, day(1))

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:        "garage",
		Date:          day(2),
		DurationHours: 2,
	})

	assert.ErrorIs(t, err, ErrInvalidRoom)
}

func TestExecute_DurationBelowMinimum(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, day(1))

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:        domain.RoomTerminalA,
		Date:          day(2),
		DurationHours: 1,
	})

	assert.ErrorIs(t, err, ErrDurationTooShort)
}

func TestExecute_MissingRoomID(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, day(1))

	_, err := uc.Execute(context.Background(), &Request{
		Date:          day(2),
		DurationHours: 2,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, day(1))

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:        domain.RoomTerminalA,
		Date:          day(2),
		DurationHours: 2,
	})

	assert.ErrorIs(t, err, ErrInternal)
}
