package domain

import "time"

type EntryDuration string

const (
	EntryHalfDay EntryDuration = "half"
	EntryFullDay EntryDuration = "full"
)

// TokenCost returns the canonical carnet cost of the duration: one token for
// a half day, two for a full day. Zero means the duration is unknown.
func (d EntryDuration) TokenCost() int {
	switch d {
	case EntryHalfDay:
		return 1
	case EntryFullDay:
		return 2
	default:
		return 0
	}
}

// EntryRecord is a carnet check-in. GrantID references the first grant the
// token allocator charged; tokens may have been split across grants, the full
// split is reported in EntryResult.Applied.
type EntryRecord struct {
	ID             string        `json:"id"`
	GrantID        string        `json:"grant_id"`
	MemberID       string        `json:"member_id"`
	EntryDate      time.Time     `json:"entry_date"`
	Duration       EntryDuration `json:"duration"`
	TokensConsumed int           `json:"tokens_consumed"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type RegisterEntryInput struct {
	MemberID  string
	EntryDate time.Time
	Duration  EntryDuration
}

type EditEntryInput struct {
	EntryDate time.Time
	Duration  EntryDuration
}

// EntryResult mirrors BookingResult for carnet check-ins.
type EntryResult struct {
	Entry   *EntryRecord
	Member  *Member
	Applied []TokenDelta
}
