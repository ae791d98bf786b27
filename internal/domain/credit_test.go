package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestRequiredCredits(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		usage    UsageType
		want     string
	}{
		{"one hour individual", time.Hour, UsageIndividual, "0.5"},
		{"one hour group", time.Hour, UsageGroup, "1"},
		{"ninety minutes individual", 90 * time.Minute, UsageIndividual, "0.75"},
		{"ninety minutes group", 90 * time.Minute, UsageGroup, "1.5"},
		{"half hour individual", 30 * time.Minute, UsageIndividual, "0.25"},
		{"three hours group", 3 * time.Hour, UsageGroup, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredCredits(tt.duration, tt.usage)
			require.NoError(t, err)
			assert.True(t, got.Equal(mustDecimal(t, tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestRequiredCredits_UnknownUsage(t *testing.T) {
	_, err := RequiredCredits(time.Hour, UsageType("corporate"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEntryDuration_TokenCost(t *testing.T) {
	assert.Equal(t, 1, EntryHalfDay.TokenCost())
	assert.Equal(t, 2, EntryFullDay.TokenCost())
	assert.Equal(t, 0, EntryDuration("weekly").TokenCost())
}

func TestCreditGrant_ValidOn(t *testing.T) {
	g := &CreditGrant{
		ValidFrom: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    GrantStatusActive,
	}

	// Both bounds are inclusive at day granularity.
	assert.True(t, g.ValidOn(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)))
	assert.True(t, g.ValidOn(time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.True(t, g.ValidOn(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, g.ValidOn(time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)))
	assert.False(t, g.ValidOn(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))

	g.Status = GrantStatusCancelled
	assert.False(t, g.ValidOn(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)))
}
