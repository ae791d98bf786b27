// Package allocation implements FIFO credit deduction across a member's
// grants and the reverse-order refund that undoes it. The allocator never
// rejects; it reports the unmet remainder to the caller.
package allocation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

type Direction int

const (
	Deduct Direction = iota
	Refund
)

// Result reports the signed hour deltas per grant, in application order,
// plus the remainder no grant could cover.
type Result struct {
	Applied []domain.GrantDelta
	Unmet   decimal.Decimal
}

// TokenResult is the entry-token analog of Result.
type TokenResult struct {
	Applied []domain.TokenDelta
	Unmet   int
}

type line struct {
	grantID string
	total   decimal.Decimal
	used    decimal.Decimal
}

// Hours allocates a booking credit cost across the grants valid on today,
// in input order (oldest-created first). Deduction takes min(remaining,
// total-used) per grant; refund walks the list in reverse taking
// min(remaining, used).
func Hours(required decimal.Decimal, grants []*domain.CreditGrant, dir Direction, today time.Time) Result {
	lines := make([]line, 0, len(grants))
	for _, g := range grants {
		if !g.ValidOn(today) {
			continue
		}
		lines = append(lines, line{grantID: g.ID, total: g.HoursTotal, used: g.HoursUsed})
	}

	applied, unmet := run(required, lines, dir)
	return Result{Applied: applied, Unmet: unmet}
}

// Tokens is the entry-token analog of Hours, over entries_total/entries_used.
func Tokens(required int, grants []*domain.CreditGrant, dir Direction, today time.Time) TokenResult {
	lines := make([]line, 0, len(grants))
	for _, g := range grants {
		if !g.ValidOn(today) {
			continue
		}
		lines = append(lines, line{
			grantID: g.ID,
			total:   decimal.NewFromInt(int64(g.EntriesTotal)),
			used:    decimal.NewFromInt(int64(g.EntriesUsed)),
		})
	}

	applied, unmet := run(decimal.NewFromInt(int64(required)), lines, dir)

	res := TokenResult{Unmet: int(unmet.IntPart())}
	for _, d := range applied {
		res.Applied = append(res.Applied, domain.TokenDelta{GrantID: d.GrantID, Tokens: int(d.Hours.IntPart())})
	}
	return res
}

func run(required decimal.Decimal, lines []line, dir Direction) ([]domain.GrantDelta, decimal.Decimal) {
	if dir == Refund {
		reversed := make([]line, len(lines))
		for i, l := range lines {
			reversed[len(lines)-1-i] = l
		}
		lines = reversed
	}

	var applied []domain.GrantDelta
	remaining := required

	for _, l := range lines {
		if !remaining.IsPositive() {
			break
		}

		var take decimal.Decimal
		switch dir {
		case Deduct:
			take = decimal.Min(remaining, l.total.Sub(l.used))
		case Refund:
			// Cannot refund below zero.
			take = decimal.Min(remaining, l.used)
		}
		if !take.IsPositive() {
			continue
		}

		delta := take
		if dir == Refund {
			delta = take.Neg()
		}
		applied = append(applied, domain.GrantDelta{GrantID: l.grantID, Hours: delta})
		remaining = remaining.Sub(take)
	}

	return applied, remaining
}
