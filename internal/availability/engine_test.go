package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminalstudios/booking-service/internal/domain"
)

var testRooms = []domain.Room{
	{ID: domain.RoomTerminalA, DisplayName: "Terminal A", DefaultEngineer: "Murda", EngineerID: "engineer-murda"},
	{ID: domain.RoomTerminalB, DisplayName: "Terminal B", DefaultEngineer: "Mike", EngineerID: "engineer-mike"},
	{ID: domain.RoomTerminalC, DisplayName: "Terminal C", DefaultEngineer: "Chaos", EngineerID: "engineer-chaos"},
}

func newTestEngine(hours Hours) *Engine {
	return NewEngine(domain.NewRegistry(testRooms), Config{
		MinBookingHours: 2,
		Hours:           hours,
	})
}

func ts(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func reservation(room domain.RoomID, start, end time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:     "res-" + string(room),
		RoomID: room,
		Start:  start,
		End:    end,
		Status: status,
	}
}

func TestEvaluate_EmptySchedule(t *testing.T) {
	engine := newTestEngine(Hours{})
	now := ts(1, 0)

	result, err := engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalA,
		Start:         ts(2, 14),
		DurationHours: 2,
		WithEngineer:  true,
	}, nil, now)

	require.NoError(t, err)
	assert.Equal(t, ts(2, 14), result.Start)
	assert.Equal(t, ts(2, 16), result.End)
	assert.Equal(t, 2, result.DurationHours)
	assert.Equal(t, "Murda", result.EngineerName)
	assert.Equal(t, "engineer-murda", result.EngineerID)
}

func TestEvaluate_WithoutEngineer(t *testing.T) {
	engine := newTestEngine(Hours{})

	result, err := engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalB,
		Start:         ts(2, 14),
		DurationHours: 2,
		WithEngineer:  false,
	}, nil, ts(1, 0))

	require.NoError(t, err)
	assert.Equal(t, domain.NoEngineer, result.EngineerName)
	assert.Equal(t, domain.NoEngineerID, result.EngineerID)
}

func TestEvaluate_Conflicts(t *testing.T) {
	// Existing confirmed session in terminal-a on Jan 2, 14:00-16:00
	existing := []*domain.Reservation{
		reservation(domain.RoomTerminalA, ts(2, 14), ts(2, 16), domain.StatusConfirmed),
	}
	engine := newTestEngine(Hours{})
	now := ts(1, 0)

	tests := []struct {
		name     string
		room     domain.RoomID
		start    time.Time
		duration int
		wantErr  error
	}{
		{"overlap from inside", domain.RoomTerminalA, ts(2, 15), 2, ErrSlotUnavailable},
		{"identical interval", domain.RoomTerminalA, ts(2, 14), 2, ErrSlotUnavailable},
		{"proposed contains existing", domain.RoomTerminalA, ts(2, 13), 4, ErrSlotUnavailable},
		{"ends inside existing", domain.RoomTerminalA, ts(2, 13), 2, ErrSlotUnavailable},
		{"abuts after, allowed", domain.RoomTerminalA, ts(2, 16), 2, nil},
		{"abuts before, allowed", domain.RoomTerminalA, ts(2, 12), 2, nil},
		{"same interval, other room", domain.RoomTerminalB, ts(2, 14), 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Evaluate(Request{
				RoomID:        tt.room,
				Start:         tt.start,
				DurationHours: tt.duration,
			}, existing, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvaluate_CancelledReservationsAreInvisible(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.RoomTerminalA, ts(2, 14), ts(2, 16), domain.StatusCancelled),
	}
	engine := newTestEngine(Hours{})

	_, err := engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalA,
		Start:         ts(2, 14),
		DurationHours: 2,
	}, existing, ts(1, 0))

	assert.NoError(t, err)
}

func TestEvaluate_PendingReservationsConflict(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.RoomTerminalA, ts(2, 14), ts(2, 16), domain.StatusPending),
	}
	engine := newTestEngine(Hours{})

	_, err := engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalA,
		Start:         ts(2, 14),
		DurationHours: 2,
	}, existing, ts(1, 0))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestEvaluate_ValidationOrder(t *testing.T) {
	// A request that violates several rules at once surfaces exactly one
	// reason, in the documented check order.
	existing := []*domain.Reservation{
		reservation(domain.RoomTerminalA, ts(2, 14), ts(2, 16), domain.StatusConfirmed),
	}
	engine := newTestEngine(Hours{})
	now := ts(3, 0)

	// Unknown room wins over everything else
	_, err := engine.Evaluate(Request{
		RoomID:        "terminal-z",
		Start:         ts(2, 15),
		DurationHours: 1,
	}, existing, now)
	assert.ErrorIs(t, err, ErrInvalidRoom)

	// Duration floor wins over past start and overlap
	_, err = engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalA,
		Start:         ts(2, 15),
		DurationHours: 1,
	}, existing, now)
	assert.ErrorIs(t, err, ErrDurationTooShort)

	// Past start wins over overlap
	_, err = engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalA,
		Start:         ts(2, 15),
		DurationHours: 2,
	}, existing, now)
	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestEvaluate_SlotInPast(t *testing.T) {
	engine := newTestEngine(Hours{})
	now := ts(2, 12)

	_, err := engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalA,
		Start:         ts(2, 11),
		DurationHours: 2,
	}, nil, now)

	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestEvaluate_StartEqualToNowIsAllowed(t *testing.T) {
	engine := newTestEngine(Hours{})
	now := ts(2, 12)

	_, err := engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalA,
		Start:         now,
		DurationHours: 2,
	}, nil, now)

	assert.NoError(t, err)
}

func TestEvaluate_BusinessHours(t *testing.T) {
	engine := newTestEngine(Hours{Restricted: true, OpenHour: 10, CloseHour: 22})
	now := ts(1, 0)

	tests := []struct {
		name     string
		start    time.Time
		duration int
		wantErr  error
	}{
		{"inside window", ts(2, 12), 2, nil},
		{"starts at open", ts(2, 10), 2, nil},
		{"ends exactly at close", ts(2, 20), 2, nil},
		{"starts before open", ts(2, 8), 2, ErrOutsideBusinessHours},
		{"runs past close", ts(2, 21), 2, ErrOutsideBusinessHours},
		{"starts after close", ts(2, 22), 2, ErrOutsideBusinessHours},
		{"fractional start runs past close", ts(2, 20).Add(30 * time.Minute), 2, ErrOutsideBusinessHours},
		{"fractional start inside window", ts(2, 14).Add(30 * time.Minute), 2, nil},
		{"fractional start before open", ts(2, 9).Add(30 * time.Minute), 2, ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Evaluate(Request{
				RoomID:        domain.RoomTerminalA,
				Start:         tt.start,
				DurationHours: tt.duration,
			}, nil, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvaluate_UnrestrictedHoursSkipsCheck(t *testing.T) {
	// A full-day window never rejects on hours, including overnight starts
	engine := newTestEngine(Hours{Restricted: false, OpenHour: 10, CloseHour: 22})

	_, err := engine.Evaluate(Request{
		RoomID:        domain.RoomTerminalA,
		Start:         ts(2, 3),
		DurationHours: 2,
	}, nil, ts(1, 0))

	assert.NoError(t, err)
}

func TestEvaluate_Deterministic(t *testing.T) {
	existing := []*domain.Reservation{
		reservation(domain.RoomTerminalA, ts(2, 14), ts(2, 16), domain.StatusConfirmed),
	}
	engine := newTestEngine(Hours{})
	req := Request{
		RoomID:        domain.RoomTerminalA,
		Start:         ts(2, 18),
		DurationHours: 3,
		WithEngineer:  true,
	}
	now := ts(1, 0)

	first, err1 := engine.Evaluate(req, existing, now)
	second, err2 := engine.Evaluate(req, existing, now)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
