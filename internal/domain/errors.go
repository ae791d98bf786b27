package domain

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrGrantNotFound   = errors.New("credit grant not found")
	ErrEntryNotFound   = errors.New("entry not found")
)

var (
	ErrRoomRestricted       = errors.New("room is reserved to staff")
	ErrInvalidDuration      = errors.New("booking is shorter than the minimum duration")
	ErrOutsideBusinessHours = errors.New("booking is outside business hours")
	ErrSchedulingConflict   = errors.New("room is already booked for this interval")
	ErrInsufficientCredit   = errors.New("not enough credit on valid grants")
	ErrBookingNotConfirmed  = errors.New("booking is not confirmed")
)

// ErrLedgerInconsistency marks a data-integrity fault: a grant delta the
// allocator computed could not be applied to any row. The surrounding
// transaction must abort.
var ErrLedgerInconsistency = errors.New("credit ledger inconsistency")

var ErrValidation = errors.New("validation error")
