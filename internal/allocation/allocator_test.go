package allocation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

var today = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func grant(id string, total, used float64) *domain.CreditGrant {
	return &domain.CreditGrant{
		ID:         id,
		ValidFrom:  today.AddDate(0, -1, 0),
		ValidTo:    today.AddDate(0, 1, 0),
		HoursTotal: decimal.NewFromFloat(total),
		HoursUsed:  decimal.NewFromFloat(used),
		Status:     domain.GrantStatusActive,
	}
}

func tokenGrant(id string, total, used int) *domain.CreditGrant {
	g := grant(id, 0, 0)
	g.EntriesTotal = total
	g.EntriesUsed = used
	return g
}

func TestHours_DeductSingleGrant(t *testing.T) {
	grants := []*domain.CreditGrant{grant("g1", 10, 2)}

	res := Hours(decimal.NewFromFloat(1.5), grants, Deduct, today)

	require.Len(t, res.Applied, 1)
	assert.Equal(t, "g1", res.Applied[0].GrantID)
	assert.True(t, res.Applied[0].Hours.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, res.Unmet.IsZero())
}

func TestHours_DeductSpillsToNextGrant(t *testing.T) {
	// g1 is oldest and nearly drained; the remainder spills into g2.
	grants := []*domain.CreditGrant{
		grant("g1", 10, 9),
		grant("g2", 10, 0),
	}

	res := Hours(decimal.NewFromFloat(2.5), grants, Deduct, today)

	require.Len(t, res.Applied, 2)
	assert.Equal(t, "g1", res.Applied[0].GrantID)
	assert.True(t, res.Applied[0].Hours.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "g2", res.Applied[1].GrantID)
	assert.True(t, res.Applied[1].Hours.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, res.Unmet.IsZero())
}

func TestHours_DeductReportsUnmet(t *testing.T) {
	grants := []*domain.CreditGrant{grant("g1", 2, 1)}

	res := Hours(decimal.NewFromInt(3), grants, Deduct, today)

	require.Len(t, res.Applied, 1)
	assert.True(t, res.Applied[0].Hours.Equal(decimal.NewFromInt(1)))
	assert.True(t, res.Unmet.Equal(decimal.NewFromInt(2)))
}

func TestHours_DeductSkipsExpiredAndDrained(t *testing.T) {
	expired := grant("expired", 10, 0)
	expired.ValidTo = today.AddDate(0, 0, -1)
	cancelled := grant("cancelled", 10, 0)
	cancelled.Status = domain.GrantStatusCancelled
	drained := grant("drained", 5, 5)

	grants := []*domain.CreditGrant{expired, cancelled, drained, grant("g1", 10, 0)}

	res := Hours(decimal.NewFromInt(2), grants, Deduct, today)

	require.Len(t, res.Applied, 1)
	assert.Equal(t, "g1", res.Applied[0].GrantID)
	assert.True(t, res.Unmet.IsZero())
}

func TestHours_RefundWalksNewestFirst(t *testing.T) {
	// Refund returns credit to the most recently charged grant first, so the
	// deltas mirror a prior deduction in reverse.
	grants := []*domain.CreditGrant{
		grant("g1", 10, 10),
		grant("g2", 10, 1.5),
	}

	res := Hours(decimal.NewFromInt(3), grants, Refund, today)

	require.Len(t, res.Applied, 2)
	assert.Equal(t, "g2", res.Applied[0].GrantID)
	assert.True(t, res.Applied[0].Hours.Equal(decimal.NewFromFloat(-1.5)))
	assert.Equal(t, "g1", res.Applied[1].GrantID)
	assert.True(t, res.Applied[1].Hours.Equal(decimal.NewFromFloat(-1.5)))
	assert.True(t, res.Unmet.IsZero())
}

func TestHours_RefundNeverBelowZero(t *testing.T) {
	grants := []*domain.CreditGrant{grant("g1", 10, 1)}

	res := Hours(decimal.NewFromInt(4), grants, Refund, today)

	require.Len(t, res.Applied, 1)
	assert.True(t, res.Applied[0].Hours.Equal(decimal.NewFromInt(-1)))
	assert.True(t, res.Unmet.Equal(decimal.NewFromInt(3)))
}

func TestHours_RefundInvertsDeduct(t *testing.T) {
	grants := []*domain.CreditGrant{
		grant("g1", 4, 3),
		grant("g2", 8, 0),
	}
	amount := decimal.NewFromFloat(2.5)

	ded := Hours(amount, grants, Deduct, today)
	require.True(t, ded.Unmet.IsZero())

	// Apply the deduction, then refund the same amount.
	for _, d := range ded.Applied {
		for _, g := range grants {
			if g.ID == d.GrantID {
				g.HoursUsed = g.HoursUsed.Add(d.Hours)
			}
		}
	}

	ref := Hours(amount, grants, Refund, today)
	require.True(t, ref.Unmet.IsZero())

	// Summed per grant, refund deltas cancel the deduction exactly.
	net := map[string]decimal.Decimal{}
	for _, d := range append(ded.Applied, ref.Applied...) {
		net[d.GrantID] = net[d.GrantID].Add(d.Hours)
	}
	for id, sum := range net {
		assert.True(t, sum.IsZero(), "grant %s nets %s", id, sum)
	}
}

func TestHours_Deterministic(t *testing.T) {
	grants := []*domain.CreditGrant{
		grant("g1", 5, 0),
		grant("g2", 5, 0),
	}

	first := Hours(decimal.NewFromInt(7), grants, Deduct, today)
	second := Hours(decimal.NewFromInt(7), grants, Deduct, today)

	assert.Equal(t, first, second)
}

func TestTokens_DeductAndRefund(t *testing.T) {
	grants := []*domain.CreditGrant{
		tokenGrant("g1", 1, 0),
		tokenGrant("g2", 10, 0),
	}

	ded := Tokens(2, grants, Deduct, today)
	require.Len(t, ded.Applied, 2)
	assert.Equal(t, domain.TokenDelta{GrantID: "g1", Tokens: 1}, ded.Applied[0])
	assert.Equal(t, domain.TokenDelta{GrantID: "g2", Tokens: 1}, ded.Applied[1])
	assert.Zero(t, ded.Unmet)

	grants[0].EntriesUsed = 1
	grants[1].EntriesUsed = 1

	ref := Tokens(2, grants, Refund, today)
	require.Len(t, ref.Applied, 2)
	assert.Equal(t, domain.TokenDelta{GrantID: "g2", Tokens: -1}, ref.Applied[0])
	assert.Equal(t, domain.TokenDelta{GrantID: "g1", Tokens: -1}, ref.Applied[1])
	assert.Zero(t, ref.Unmet)
}

func TestTokens_DeductUnmet(t *testing.T) {
	grants := []*domain.CreditGrant{tokenGrant("g1", 1, 1)}

	res := Tokens(2, grants, Deduct, today)

	assert.Empty(t, res.Applied)
	assert.Equal(t, 2, res.Unmet)
}
