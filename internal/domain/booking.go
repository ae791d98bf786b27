package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type UsageType string

const (
	UsageIndividual UsageType = "individual"
	UsageGroup      UsageType = "group"
)

// Booking is a room reservation. MemberID is nil for external bookers, in
// which case ExternalName holds the guest's name and no grant is touched.
// CreditsConsumed records the hours the allocator actually charged for the
// booking at creation or last edit; it is retained after cancellation.
type Booking struct {
	ID              string          `json:"id"`
	RoomID          string          `json:"room_id"`
	MemberID        *string         `json:"member_id"`
	ExternalName    string          `json:"external_name,omitempty"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	UsageType       UsageType       `json:"usage_type"`
	CreditsConsumed decimal.Decimal `json:"credits_consumed"`
	Status          BookingStatus   `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// Overlaps reports whether [start, end) intersects the booking's interval.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndTime) && end.After(b.StartTime)
}

// HasConflict reports whether the interval collides with any of the given
// bookings. Callers pass the confirmed bookings of one room on one day;
// excludeID skips the booking being edited so it does not conflict with its
// own prior slot.
func HasConflict(start, end time.Time, existing []*Booking, excludeID string) bool {
	for _, b := range existing {
		if b.ID == excludeID {
			continue
		}
		if b.Status != BookingStatusConfirmed {
			continue
		}
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// SameDay reports whether both timestamps fall on the same calendar day.
// Cross-midnight bookings are not supported.
func SameDay(start, end time.Time) bool {
	return DayOf(start).Equal(DayOf(end))
}

type CreateBookingInput struct {
	RoomID       string
	MemberID     *string
	ExternalName string
	StartTime    time.Time
	EndTime      time.Time
	UsageType    UsageType
}

type ModifyBookingInput struct {
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
	UsageType UsageType
}

// BookingResult is the plain data a lifecycle transaction returns for
// notification and receipt collaborators. Applied lists the grant deltas the
// allocator persisted; Unmet is the accepted overage, if any.
type BookingResult struct {
	Booking *Booking
	Room    *Room
	Member  *Member
	Applied []GrantDelta
	Unmet   decimal.Decimal
}
