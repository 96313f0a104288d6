package availability

import (
	"time"

	"github.com/terminalstudios/booking-service/internal/domain"
)

// Hours is the studio operating window. When Restricted is false the window
// spans the full day and the hours check is skipped entirely. The flag is
// explicit so that a 0..24 window is never inferred from the numbers.
type Hours struct {
	Restricted bool
	OpenHour   int // first bookable hour, inclusive
	CloseHour  int // hour sessions must end by, exclusive as a start hour
}

// Config holds the booking rules the engine enforces
type Config struct {
	MinBookingHours int
	Hours           Hours
}

// Request is a candidate reservation not yet committed
type Request struct {
	RoomID        domain.RoomID
	Start         time.Time
	DurationHours int
	WithEngineer  bool
}

// Result is the materialized interval and engineer assignment for an
// accepted request
type Result struct {
	Start         time.Time
	End           time.Time
	DurationHours int
	EngineerName  string
	EngineerID    string
}

// Engine decides whether a proposed room/time/duration combination may be
// booked given a snapshot of existing reservations. It is a pure function of
// its inputs: it holds no mutable state and never writes to the store, so it
// is safe to call from any number of concurrent callers.
//
// The engine is a necessary but insufficient check against double booking:
// two callers evaluating the same stale snapshot can both pass. Committing
// callers must re-run Evaluate against a locked snapshot inside a
// transaction before persisting (see the confirm_booking use case).
type Engine struct {
	registry *domain.Registry
	cfg      Config
}

// NewEngine creates an engine over the static room registry
func NewEngine(registry *domain.Registry, cfg Config) *Engine {
	return &Engine{registry: registry, cfg: cfg}
}

// Evaluate validates the request and checks the proposed interval against
// the supplied reservation snapshot.
//
// Checks run in a fixed order so that exactly one reason is surfaced when
// several violations co-occur: room validity, duration floor, past start,
// business hours, overlap.
func (e *Engine) Evaluate(req Request, existing []*domain.Reservation, now time.Time) (*Result, error) {
	room, ok := e.registry.Get(req.RoomID)
	if !ok {
		return nil, ErrInvalidRoom
	}

	if req.DurationHours < e.cfg.MinBookingHours {
		return nil, ErrDurationTooShort
	}

	if req.Start.Before(now) {
		return nil, ErrSlotInPast
	}

	end := req.Start.Add(time.Duration(req.DurationHours) * time.Hour)

	if e.cfg.Hours.Restricted {
		// Compare full timestamps against the day's boundaries so that a
		// fractional start (e.g. 20:30 with a 22:00 close) cannot slip a
		// session past closing.
		dayStart := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 0, 0, 0, 0, req.Start.Location())
		openAt := dayStart.Add(time.Duration(e.cfg.Hours.OpenHour) * time.Hour)
		closeAt := dayStart.Add(time.Duration(e.cfg.Hours.CloseHour) * time.Hour)
		if req.Start.Before(openAt) || end.After(closeAt) {
			return nil, ErrOutsideBusinessHours
		}
	}

	for _, r := range existing {
		if r.RoomID != req.RoomID || !r.IsActive() {
			continue
		}
		// Half-open interval overlap: [start, end) vs [r.Start, r.End).
		// Back-to-back sessions abut without overlapping, so equality on
		// either boundary is not a conflict.
		if req.Start.Before(r.End) && end.After(r.Start) {
			return nil, ErrSlotUnavailable
		}
	}

	result := &Result{
		Start:         req.Start,
		End:           end,
		DurationHours: req.DurationHours,
		EngineerName:  domain.NoEngineer,
		EngineerID:    domain.NoEngineerID,
	}
	if req.WithEngineer {
		result.EngineerName = room.DefaultEngineer
		result.EngineerID = room.EngineerID
	}

	return result, nil
}
