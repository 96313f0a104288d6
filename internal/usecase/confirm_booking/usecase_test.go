package confirm_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/domain"
	reservationRepo "github.com/terminalstudios/booking-service/internal/infra/storage/reservation"
	"github.com/terminalstudios/booking-service/internal/integrations/formspree"
	"github.com/terminalstudios/booking-service/internal/integrations/gohighlevel"
	"github.com/terminalstudios/booking-service/internal/integrations/stripepay"
)

type fakeRepo struct {
	byIntent     *domain.Reservation
	reservations []*domain.Reservation
	created      *domain.Reservation
	createErr    error
}

func (f *fakeRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *res
	out.ID = "res-created"
	out.CreatedAt = time.Now()
	f.created = &out
	return &out, nil
}

func (f *fakeRepo) GetByPaymentIntent(context.Context, string) (*domain.Reservation, error) {
	if f.byIntent == nil {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.byIntent, nil
}

func (f *fakeRepo) GetByRoomWithFilter(context.Context, domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type fakeStripe struct {
	intent *stripepay.Intent
	err    error
}

func (f *fakeStripe) GetIntent(context.Context, string) (*stripepay.Intent, error) {
	return f.intent, f.err
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCRM struct {
	got *gohighlevel.BookingContact
	err error
}

func (f *fakeCRM) UpsertBookingContact(_ context.Context, c gohighlevel.BookingContact) error {
	f.got = &c
	return f.err
}

type fakeNotifier struct {
	got *formspree.BookingNotification
	err error
}

func (f *fakeNotifier) NotifyBooking(_ context.Context, n formspree.BookingNotification) error {
	f.got = &n
	return f.err
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

func ts(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func succeededIntent() *stripepay.Intent {
	return &stripepay.Intent{
		ID:     "pi_test",
		Status: "succeeded",
		Metadata: map[string]string{
			"type":          "studio_booking_deposit",
			"customerName":  "Dana Reyes",
			"customerEmail": "dana@example.com",
			"customerPhone": "+15550100",
			"studio":        "terminal-a",
			"studioName":    "Terminal A",
			"bookingStart":  ts(2, 14).Format(time.RFC3339),
			"durationHours": "2",
			"withEngineer":  "yes",
			"engineerName":  "Murda",
			"engineerId":    "engineer-murda",
			"totalAmount":   "160.00",
			"depositAmount": "80.00",
		},
	}
}

type testDeps struct {
	repo     *fakeRepo
	stripe   *fakeStripe
	crm      *fakeCRM
	notifier *fakeNotifier
}

func newTestUseCase(deps testDeps, now time.Time) *UseCase {
	if deps.repo == nil {
		deps.repo = &fakeRepo{}
	}
	if deps.stripe == nil {
		deps.stripe = &fakeStripe{intent: succeededIntent()}
	}
	if deps.crm == nil {
		deps.crm = &fakeCRM{}
	}
	if deps.notifier == nil {
		deps.notifier = &fakeNotifier{}
	}

	engine := availability.NewEngine(domain.NewRegistry(testRooms), availability.Config{MinBookingHours: 2})
	uc := NewUseCase(deps.repo, engine, deps.stripe, inlineTxManager{}, deps.crm, deps.notifier, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_ConfirmsBooking(t *testing.T) {
	repo := &fakeRepo{}
	crm := &fakeCRM{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(testDeps{repo: repo, crm: crm, notifier: notifier}, ts(1, 0))

	result, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "pi_test"})

	require.NoError(t, err)
	assert.Equal(t, "res-created", result.ReservationID)
	assert.Equal(t, domain.StatusConfirmed, result.Status)
	assert.Equal(t, ts(2, 14), result.Start)
	assert.Equal(t, ts(2, 16), result.End)
	assert.Equal(t, 160.0, result.TotalPrice)
	assert.Equal(t, 80.0, result.DepositPaid)
	assert.False(t, result.AlreadyConfirmed)

	require.NotNil(t, repo.created)
	assert.Equal(t, "pi_test", repo.created.PaymentIntentID)
	assert.Equal(t, domain.RoomTerminalA, repo.created.RoomID)

	// Side channels fire after the reservation is persisted
	require.NotNil(t, crm.got)
	assert.Equal(t, "Dana", crm.got.FirstName)
	assert.Equal(t, "Reyes", crm.got.LastName)
	require.NotNil(t, notifier.got)
	assert.Equal(t, "Terminal A", notifier.got.Room)
}

func TestExecute_IdempotentForConfirmedIntent(t *testing.T) {
	existing := &domain.Reservation{
		ID:              "res-existing",
		RoomID:          domain.RoomTerminalA,
		Start:           ts(2, 14),
		End:             ts(2, 16),
		Status:          domain.StatusConfirmed,
		PaymentIntentID: "pi_test",
	}
	repo := &fakeRepo{byIntent: existing}
	crm := &fakeCRM{}
	uc := newTestUseCase(testDeps{repo: repo, crm: crm}, ts(1, 0))

	result, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "pi_test"})

	require.NoError(t, err)
	assert.Equal(t, "res-existing", result.ReservationID)
	assert.True(t, result.AlreadyConfirmed)
	assert.Nil(t, repo.created, "no second reservation may be written")
	assert.Nil(t, crm.got, "side channels must not fire again")
}

func TestExecute_PaymentNotCompleted(t *testing.T) {
	intent := succeededIntent()
	intent.Status = "requires_payment_method"
	uc := newTestUseCase(testDeps{stripe: &fakeStripe{intent: intent}}, ts(1, 0))

	_, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "pi_test"})

	assert.ErrorIs(t, err, ErrPaymentNotCompleted)
}

func TestExecute_IntentNotFound(t *testing.T) {
	uc := newTestUseCase(testDeps{stripe: &fakeStripe{err: stripepay.ErrIntentNotFound}}, ts(1, 0))

	_, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "pi_missing"})

	assert.ErrorIs(t, err, ErrIntentNotFound)
}

func TestExecute_SlotTakenBetweenPaymentAndConfirm(t *testing.T) {
	repo := &fakeRepo{
		reservations: []*domain.Reservation{
			{
				ID:     "res-rival",
				RoomID: domain.RoomTerminalA,
				Start:  ts(2, 13),
				End:    ts(2, 15),
				Status: domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(testDeps{repo: repo}, ts(1, 0))

	_, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "pi_test"})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, repo.created)
}

func TestExecute_DuplicateIntentRaceReturnsExisting(t *testing.T) {
	existing := &domain.Reservation{
		ID:              "res-winner",
		RoomID:          domain.RoomTerminalA,
		Status:          domain.StatusConfirmed,
		PaymentIntentID: "pi_test",
	}
	repo := &fakeRepo{createErr: reservationRepo.ErrDuplicatePaymentIntent}
	uc := newTestUseCase(testDeps{repo: repo}, ts(1, 0))

	// The first lookup misses, the insert loses the unique index race,
	// the second lookup finds the winner
	calls := 0
	uc.reservationRepo = &racingRepo{inner: repo, winner: existing, calls: &calls}

	result, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "pi_test"})

	require.NoError(t, err)
	assert.Equal(t, "res-winner", result.ReservationID)
	assert.True(t, result.AlreadyConfirmed)
}

// racingRepo misses the first GetByPaymentIntent and hits on retries,
// simulating a concurrent confirm that commits in between
type racingRepo struct {
	inner  *fakeRepo
	winner *domain.Reservation
	calls  *int
}

func (r *racingRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return r.inner.Create(ctx, res)
}

func (r *racingRepo) GetByPaymentIntent(context.Context, string) (*domain.Reservation, error) {
	*r.calls++
	if *r.calls == 1 {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r.winner, nil
}

func (r *racingRepo) GetByRoomWithFilter(ctx context.Context, f domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	return r.inner.GetByRoomWithFilter(ctx, f)
}

func TestExecute_InvalidMetadata(t *testing.T) {
	intent := succeededIntent()
	intent.Metadata["type"] = "subscription"
	uc := newTestUseCase(testDeps{stripe: &fakeStripe{intent: intent}}, ts(1, 0))

	_, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "pi_test"})

	assert.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestExecute_SideChannelFailuresDoNotUndoBooking(t *testing.T) {
	repo := &fakeRepo{}
	crm := &fakeCRM{err: errors.New("CRM is down")}
	notifier := &fakeNotifier{err: formspree.ErrNotConfigured}
	uc := newTestUseCase(testDeps{repo: repo, crm: crm, notifier: notifier}, ts(1, 0))

	result, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "pi_test"})

	require.NoError(t, err)
	assert.Equal(t, "res-created", result.ReservationID)
}

func TestExecute_MissingIntentID(t *testing.T) {
	uc := newTestUseCase(testDeps{}, ts(1, 0))

	_, err := uc.Execute(context.Background(), &Request{PaymentIntentID: "  "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
