// Package policy holds the static business rules of the booking engine:
// opening hours, minimum booking duration, the overage cap and room access
// restrictions. It is a pure lookup table with no state.
package policy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

const (
	// MinimumDuration is the shortest bookable interval.
	MinimumDuration = 30 * time.Minute

	openHour    = 9
	openMinute  = 0
	closeHour   = 18
	closeMinute = 30
)

// MaxOverageHours bounds the credit remainder a booking may leave uncovered.
// The cap is uniform for every actor; unmet == cap is still accepted.
var MaxOverageHours = decimal.NewFromInt(2)

// hoursExempt lists roles that may book outside business hours.
var hoursExempt = map[domain.Role]bool{
	domain.RoleHost:  true,
	domain.RoleAdmin: true,
}

// staffRoomExempt lists roles allowed into staff-only rooms.
var staffRoomExempt = map[domain.Role]bool{
	domain.RoleHost:  true,
	domain.RoleAdmin: true,
}

// WithinBusinessHours reports whether the interval falls inside opening hours
// (Mon-Fri, 09:00-18:30). Exempt roles always pass.
func WithinBusinessHours(start, end time.Time, role domain.Role) bool {
	if hoursExempt[role] {
		return true
	}

	switch start.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	opening := time.Date(start.Year(), start.Month(), start.Day(), openHour, openMinute, 0, 0, start.Location())
	closing := time.Date(start.Year(), start.Month(), start.Day(), closeHour, closeMinute, 0, 0, start.Location())

	return !start.Before(opening) && !end.After(closing)
}

// RoomRestricted reports whether the room is off-limits for the role.
func RoomRestricted(room *domain.Room, role domain.Role) bool {
	return room.StaffOnly && !staffRoomExempt[role]
}
