package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/pkg/dbmetrics"
	"github.com/terminalstudios/booking-service/pkg/psqlbuilder"
)

// Repository is the PostgreSQL reservation store
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository over db
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reservation, assigning it a fresh id.
// If the context carries an open transaction (via the transaction manager),
// the insert runs on it; the confirm flow relies on this so the insert and
// the preceding availability re-check share one serializable transaction.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	res.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"room_id",
			"start_time",
			"end_time",
			"duration_hours",
			"status",
			"engineer_name",
			"engineer_id",
			"with_engineer",
			"client_name",
			"client_email",
			"client_phone",
			"project_type",
			"message",
			"total_price",
			"deposit_paid",
			"payment_intent_id",
		).
		Values(
			res.ID,
			res.RoomID,
			res.Start,
			res.End,
			res.DurationHours,
			res.Status,
			res.EngineerName,
			res.EngineerID,
			res.WithEngineer,
			res.ClientName,
			res.ClientEmail,
			res.ClientPhone,
			res.ProjectType,
			res.Message,
			res.TotalPrice,
			res.DepositPaid,
			res.PaymentIntentID,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicatePaymentIntent
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// GetByID fetches a reservation by its id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, ErrReservationNotFound
	}
	return reservations[0], nil
}

// GetByPaymentIntent fetches the reservation created for a Stripe payment
// intent, if any. Used to make booking confirmation idempotent.
func (r *Repository) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"payment_intent_id": paymentIntentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentIntent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentIntent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, ErrReservationNotFound
	}
	return reservations[0], nil
}

// GetByRoomWithFilter returns reservations for a room matching the filter,
// ordered by start time. Non-cancelled only, unless IncludeCancelled or an
// explicit Status is set.
//
// Inside a transaction the rows are locked with FOR UPDATE: the confirm flow
// loads the snapshot this way so a concurrent confirmation of the same slot
// blocks until the first one commits, then sees its row.
func (r *Repository) GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().
		Where(squirrel.Eq{"room_id": filter.RoomID})

	// Period filter compares intervals, not points: a reservation is in the
	// period when it overlaps [From, To)
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Cancel marks a reservation cancelled with a reason
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"room_id",
		"start_time",
		"end_time",
		"duration_hours",
		"status",
		"engineer_name",
		"engineer_id",
		"with_engineer",
		"client_name",
		"client_email",
		"client_phone",
		"project_type",
		"message",
		"total_price",
		"deposit_paid",
		"payment_intent_id",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
	).From("reservations")
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.RoomID,
			&res.Start,
			&res.End,
			&res.DurationHours,
			&res.Status,
			&res.EngineerName,
			&res.EngineerID,
			&res.WithEngineer,
			&res.ClientName,
			&res.ClientEmail,
			&res.ClientPhone,
			&res.ProjectType,
			&res.Message,
			&res.TotalPrice,
			&res.DepositPaid,
			&res.PaymentIntentID,
			&res.CancellationReason,
			&res.CancelledAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
