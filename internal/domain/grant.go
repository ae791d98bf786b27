package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type GrantStatus string

const (
	GrantStatusActive    GrantStatus = "active"
	GrantStatusCancelled GrantStatus = "cancelled"
)

// CreditGrant is a time-bounded allotment of bookable hours and entry tokens
// (a subscription or a leftover carnet). A member may hold several at once.
type CreditGrant struct {
	ID           string          `json:"id"`
	MemberID     string          `json:"member_id"`
	ValidFrom    time.Time       `json:"valid_from"`
	ValidTo      time.Time       `json:"valid_to"`
	HoursTotal   decimal.Decimal `json:"hours_total"`
	HoursUsed    decimal.Decimal `json:"hours_used"`
	EntriesTotal int             `json:"entries_total"`
	EntriesUsed  int             `json:"entries_used"`
	Status       GrantStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ValidOn reports whether the grant covers the given day; both bounds are
// inclusive at day granularity.
func (g *CreditGrant) ValidOn(day time.Time) bool {
	if g.Status != GrantStatusActive {
		return false
	}
	d := DayOf(day)
	return !d.Before(DayOf(g.ValidFrom)) && !d.After(DayOf(g.ValidTo))
}

func (g *CreditGrant) HoursAvailable() decimal.Decimal {
	return g.HoursTotal.Sub(g.HoursUsed)
}

func (g *CreditGrant) EntriesAvailable() int {
	return g.EntriesTotal - g.EntriesUsed
}

// GrantDelta is one hour mutation applied to a grant: positive for
// deductions, negative for refunds.
type GrantDelta struct {
	GrantID string          `json:"grant_id"`
	Hours   decimal.Decimal `json:"hours"`
}

// TokenDelta is the entry-token analog of GrantDelta.
type TokenDelta struct {
	GrantID string `json:"grant_id"`
	Tokens  int    `json:"tokens"`
}

// DayOf truncates a timestamp to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
