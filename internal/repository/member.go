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

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT id, full_name, role, telegram_chat_id, created_at
			  FROM members
			  WHERE id = $1`

	var row row
	if tx, ok := txFrom(ctx); ok {
		row = tx.QueryRowContext(ctx, query, id)
	} else {
		res, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
		if err != nil {
			return nil, fmt.Errorf("get member: %w", err)
		}
		row = res
	}

	var m domain.Member
	if err := row.Scan(&m.ID, &m.FullName, &m.Role, &m.TelegramChatID, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}

	return &m, nil
}
