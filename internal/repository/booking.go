package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

const bookingColumns = `id, room_id, member_id, external_name, start_time, end_time,
			usage_type, credits_consumed, status, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var err error
	if tx, ok := txFrom(ctx); ok {
		_, err = tx.ExecContext(ctx, query,
			b.ID, b.RoomID, b.MemberID, nullableName(b.ExternalName), b.StartTime, b.EndTime,
			b.UsageType, b.CreditsConsumed, b.Status, b.CreatedAt, b.UpdatedAt,
		)
	} else {
		_, err = r.db.ExecWithRetry(ctx, r.strategy, query,
			b.ID, b.RoomID, b.MemberID, nullableName(b.ExternalName), b.StartTime, b.EndTime,
			b.UsageType, b.CreditsConsumed, b.Status, b.CreatedAt, b.UpdatedAt,
		)
	}
	if err != nil {
		// 23P01: the exclusion constraint on (room, interval) caught an
		// overlap a concurrent transaction committed first.
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return domain.ErrSchedulingConflict
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	var row row
	if tx, ok := txFrom(ctx); ok {
		// Lock the row so concurrent edits of the same booking serialize.
		row = tx.QueryRowContext(ctx, query+` FOR UPDATE`, id)
	} else {
		res, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
		if err != nil {
			return nil, fmt.Errorf("get booking: %w", err)
		}
		row = res
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings
			  SET room_id = $2, start_time = $3, end_time = $4, usage_type = $5,
			      credits_consumed = $6, status = $7, updated_at = $8
			  WHERE id = $1`

	var res sql.Result
	var err error
	if tx, ok := txFrom(ctx); ok {
		res, err = tx.ExecContext(ctx, query,
			b.ID, b.RoomID, b.StartTime, b.EndTime, b.UsageType,
			b.CreditsConsumed, b.Status, b.UpdatedAt,
		)
	} else {
		res, err = r.db.ExecWithRetry(ctx, r.strategy, query,
			b.ID, b.RoomID, b.StartTime, b.EndTime, b.UsageType,
			b.CreditsConsumed, b.Status, b.UpdatedAt,
		)
	}
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return domain.ErrSchedulingConflict
		}
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) ListConfirmedByRoomDay(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error) {
	query, args := roomDayQuery(roomID, day)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list room bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) LockConfirmedByRoomDay(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error) {
	tx, err := mustTxFrom(ctx)
	if err != nil {
		return nil, err
	}

	query, args := roomDayQuery(roomID, day)
	rows, err := tx.QueryContext(ctx, query+` FOR UPDATE`, args...)
	if err != nil {
		return nil, fmt.Errorf("lock room bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE member_id = $1
			  ORDER BY start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list member bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func roomDayQuery(roomID string, day time.Time) (string, []any) {
	from := domain.DayOf(day)
	to := from.Add(24 * time.Hour)
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE room_id = $1 AND status = $2 AND start_time >= $3 AND start_time < $4
			  ORDER BY start_time`
	return query, []any{roomID, domain.BookingStatusConfirmed, from, to}
}

func scanBooking(row row) (*domain.Booking, error) {
	var b domain.Booking
	var externalName sql.NullString
	if err := row.Scan(
		&b.ID, &b.RoomID, &b.MemberID, &externalName, &b.StartTime, &b.EndTime,
		&b.UsageType, &b.CreditsConsumed, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.ExternalName = externalName.String
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func nullableName(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
