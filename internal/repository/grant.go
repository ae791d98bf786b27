package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

const grantColumns = `id, member_id, valid_from, valid_to, hours_total, hours_used,
			entries_total, entries_used, status, created_at`

type GrantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGrantRepo(db *dbpg.DB) *GrantRepository {
	return &GrantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GrantRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.CreditGrant, error) {
	query := `SELECT ` + grantColumns + `
			  FROM credit_grants
			  WHERE member_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	defer rows.Close()

	return collectGrants(rows)
}

// LockValidByMember returns the member's active grants covering the given
// day, oldest-created first. The rows come back locked so concurrent
// allocations against the same member's ledger serialize; the ordering is
// what makes FIFO allocation deterministic.
func (r *GrantRepository) LockValidByMember(ctx context.Context, memberID string, day time.Time) ([]*domain.CreditGrant, error) {
	tx, err := mustTxFrom(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + grantColumns + `
			  FROM credit_grants
			  WHERE member_id = $1 AND status = $2 AND valid_from <= $3 AND valid_to >= $3
			  ORDER BY created_at
			  FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, memberID, domain.GrantStatusActive, domain.DayOf(day))
	if err != nil {
		return nil, fmt.Errorf("lock grants: %w", err)
	}
	defer rows.Close()

	return collectGrants(rows)
}

func (r *GrantRepository) AddHoursUsed(ctx context.Context, grantID string, delta decimal.Decimal) error {
	query := `UPDATE credit_grants
			  SET hours_used = hours_used + $2
			  WHERE id = $1`

	return r.applyDelta(ctx, query, grantID, delta)
}

func (r *GrantRepository) AddEntriesUsed(ctx context.Context, grantID string, delta int) error {
	query := `UPDATE credit_grants
			  SET entries_used = entries_used + $2
			  WHERE id = $1`

	return r.applyDelta(ctx, query, grantID, delta)
}

func (r *GrantRepository) applyDelta(ctx context.Context, query, grantID string, delta any) error {
	var res sql.Result
	var err error
	if tx, ok := txFrom(ctx); ok {
		res, err = tx.ExecContext(ctx, query, grantID, delta)
	} else {
		res, err = r.db.ExecWithRetry(ctx, r.strategy, query, grantID, delta)
	}
	if err != nil {
		return fmt.Errorf("apply grant delta: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("grant rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrGrantNotFound
	}

	return nil
}

func collectGrants(rows *sql.Rows) ([]*domain.CreditGrant, error) {
	var res []*domain.CreditGrant
	for rows.Next() {
		var g domain.CreditGrant
		if err := rows.Scan(
			&g.ID, &g.MemberID, &g.ValidFrom, &g.ValidTo, &g.HoursTotal, &g.HoursUsed,
			&g.EntriesTotal, &g.EntriesUsed, &g.Status, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		res = append(res, &g)
	}
	return res, rows.Err()
}
