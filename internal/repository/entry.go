package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

const entryColumns = `id, grant_id, member_id, entry_date, duration, tokens_consumed, created_at, updated_at`

type EntryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEntryRepo(db *dbpg.DB) *EntryRepository {
	return &EntryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EntryRepository) Create(ctx context.Context, e *domain.EntryRecord) error {
	query := `INSERT INTO entries (` + entryColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var err error
	if tx, ok := txFrom(ctx); ok {
		_, err = tx.ExecContext(ctx, query,
			e.ID, e.GrantID, e.MemberID, e.EntryDate, e.Duration, e.TokensConsumed, e.CreatedAt, e.UpdatedAt,
		)
	} else {
		_, err = r.db.ExecWithRetry(ctx, r.strategy, query,
			e.ID, e.GrantID, e.MemberID, e.EntryDate, e.Duration, e.TokensConsumed, e.CreatedAt, e.UpdatedAt,
		)
	}
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	return nil
}

func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.EntryRecord, error) {
	query := `SELECT ` + entryColumns + `
			  FROM entries
			  WHERE id = $1`

	var row row
	if tx, ok := txFrom(ctx); ok {
		// Lock the row so concurrent edits of the same entry serialize.
		row = tx.QueryRowContext(ctx, query+` FOR UPDATE`, id)
	} else {
		res, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
		if err != nil {
			return nil, fmt.Errorf("get entry: %w", err)
		}
		row = res
	}

	var e domain.EntryRecord
	if err := row.Scan(&e.ID, &e.GrantID, &e.MemberID, &e.EntryDate, &e.Duration, &e.TokensConsumed, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	return &e, nil
}

func (r *EntryRepository) Update(ctx context.Context, e *domain.EntryRecord) error {
	query := `UPDATE entries
			  SET entry_date = $2, duration = $3, tokens_consumed = $4, updated_at = $5
			  WHERE id = $1`

	var res sql.Result
	var err error
	if tx, ok := txFrom(ctx); ok {
		res, err = tx.ExecContext(ctx, query, e.ID, e.EntryDate, e.Duration, e.TokensConsumed, e.UpdatedAt)
	} else {
		res, err = r.db.ExecWithRetry(ctx, r.strategy, query, e.ID, e.EntryDate, e.Duration, e.TokensConsumed, e.UpdatedAt)
	}
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("entry rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}
