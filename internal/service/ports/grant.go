package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

type GrantRepo interface {
	ListByMember(ctx context.Context, memberID string) ([]*domain.CreditGrant, error)
	// LockValidByMember returns the member's active grants valid on the given
	// day, oldest-created first, locked for update; it must run inside a
	// transaction.
	LockValidByMember(ctx context.Context, memberID string, day time.Time) ([]*domain.CreditGrant, error)
	// AddHoursUsed applies a signed delta to hours_used. A delta that matches
	// no grant row returns domain.ErrGrantNotFound.
	AddHoursUsed(ctx context.Context, grantID string, delta decimal.Decimal) error
	// AddEntriesUsed is the entry-token analog of AddHoursUsed.
	AddEntriesUsed(ctx context.Context, grantID string, delta int) error
}
