package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/allocation"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/policy"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/service/ports"
)

// BookingService owns the booking lifecycle: Create, Modify and Cancel each
// run as one store transaction so that a booking's credits_consumed always
// matches the grant deltas actually applied. Locks are taken in a fixed
// order, room-day bookings before member grants, to keep concurrent
// transactions from deadlocking.
type BookingService struct {
	tx       ports.TxManager
	rooms    ports.RoomRepo
	bookings ports.BookingRepo
	grants   ports.GrantRepo
	members  ports.MemberRepo
	logger   logger.Logger
}

func NewBookingService(
	tx ports.TxManager,
	rooms ports.RoomRepo,
	bookings ports.BookingRepo,
	grants ports.GrantRepo,
	members ports.MemberRepo,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		tx:       tx,
		rooms:    rooms,
		bookings: bookings,
		grants:   grants,
		members:  members,
		logger:   logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingResult, error) {
	if input.MemberID == nil && input.ExternalName == "" {
		return nil, fmt.Errorf("%w: member_id or external_name is required", domain.ErrValidation)
	}

	var res *domain.BookingResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		room, member, err := s.loadRoomAndMember(ctx, input.RoomID, input.MemberID)
		if err != nil {
			return err
		}

		role := actorRole(member)
		if policy.RoomRestricted(room, role) {
			return domain.ErrRoomRestricted
		}
		if err := validateInterval(input.StartTime, input.EndTime, role); err != nil {
			return err
		}

		existing, err := s.bookings.LockConfirmedByRoomDay(ctx, room.ID, input.StartTime)
		if err != nil {
			return fmt.Errorf("lock room bookings: %w", err)
		}
		if domain.HasConflict(input.StartTime, input.EndTime, existing, "") {
			return domain.ErrSchedulingConflict
		}

		required, err := domain.RequiredCredits(input.EndTime.Sub(input.StartTime), input.UsageType)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		booking := &domain.Booking{
			ID:              uuid.New().String(),
			RoomID:          room.ID,
			MemberID:        input.MemberID,
			ExternalName:    input.ExternalName,
			StartTime:       input.StartTime,
			EndTime:         input.EndTime,
			UsageType:       input.UsageType,
			CreditsConsumed: required,
			Status:          domain.BookingStatusConfirmed,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		var applied []domain.GrantDelta
		unmet := decimal.Zero
		if member != nil {
			applied, unmet, err = s.deduct(ctx, member.ID, required)
			if err != nil {
				return err
			}
		}

		if err := s.bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		res = &domain.BookingResult{Booking: booking, Room: room, Member: member, Applied: applied, Unmet: unmet}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", res.Booking.ID),
		logger.String("room_id", res.Booking.RoomID),
		logger.String("credits", res.Booking.CreditsConsumed.String()),
		logger.String("overage", res.Unmet.String()),
	)

	return res, nil
}

func (s *BookingService) Modify(ctx context.Context, bookingID string, input domain.ModifyBookingInput) (*domain.BookingResult, error) {
	var res *domain.BookingResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		booking, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}
		if booking.Status != domain.BookingStatusConfirmed {
			return domain.ErrBookingNotConfirmed
		}

		room, member, err := s.loadRoomAndMember(ctx, input.RoomID, booking.MemberID)
		if err != nil {
			return err
		}

		role := actorRole(member)
		if policy.RoomRestricted(room, role) {
			return domain.ErrRoomRestricted
		}
		if err := validateInterval(input.StartTime, input.EndTime, role); err != nil {
			return err
		}

		existing, err := s.bookings.LockConfirmedByRoomDay(ctx, room.ID, input.StartTime)
		if err != nil {
			return fmt.Errorf("lock room bookings: %w", err)
		}
		if domain.HasConflict(input.StartTime, input.EndTime, existing, booking.ID) {
			return domain.ErrSchedulingConflict
		}

		required, err := domain.RequiredCredits(input.EndTime.Sub(input.StartTime), input.UsageType)
		if err != nil {
			return err
		}

		// The member is only charged (or refunded) the difference against
		// what the booking already consumed; the overage cap applies to that
		// difference alone.
		delta := required.Sub(booking.CreditsConsumed)

		var applied []domain.GrantDelta
		unmet := decimal.Zero
		if member != nil && !delta.IsZero() {
			if delta.IsPositive() {
				applied, unmet, err = s.deduct(ctx, member.ID, delta)
			} else {
				applied, err = s.refund(ctx, member.ID, delta.Neg(), booking.ID)
			}
			if err != nil {
				return err
			}
		}

		booking.RoomID = room.ID
		booking.StartTime = input.StartTime
		booking.EndTime = input.EndTime
		booking.UsageType = input.UsageType
		booking.CreditsConsumed = required
		booking.UpdatedAt = time.Now().UTC()

		if err := s.bookings.Update(ctx, booking); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		res = &domain.BookingResult{Booking: booking, Room: room, Member: member, Applied: applied, Unmet: unmet}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking modified",
		logger.String("booking_id", res.Booking.ID),
		logger.String("room_id", res.Booking.RoomID),
		logger.String("credits", res.Booking.CreditsConsumed.String()),
	)

	return res, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*domain.BookingResult, error) {
	var res *domain.BookingResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		booking, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking: %w", err)
		}
		if booking.Status != domain.BookingStatusConfirmed {
			return domain.ErrBookingNotConfirmed
		}

		room, member, err := s.loadRoomAndMember(ctx, booking.RoomID, booking.MemberID)
		if err != nil {
			return err
		}

		var applied []domain.GrantDelta
		if member != nil && booking.CreditsConsumed.IsPositive() {
			applied, err = s.refund(ctx, member.ID, booking.CreditsConsumed, booking.ID)
			if err != nil {
				return err
			}
		}

		// credits_consumed stays on the row: it records what the booking
		// consumed while it was active, for receipts and audit.
		booking.Status = domain.BookingStatusCancelled
		booking.UpdatedAt = time.Now().UTC()

		if err := s.bookings.Update(ctx, booking); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}

		res = &domain.BookingResult{Booking: booking, Room: room, Member: member, Applied: applied, Unmet: decimal.Zero}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", res.Booking.ID),
		logger.String("refunded", res.Booking.CreditsConsumed.String()),
	)

	return res, nil
}

func (s *BookingService) ListRoomDay(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error) {
	return s.bookings.ListConfirmedByRoomDay(ctx, roomID, day)
}

func (s *BookingService) ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	return s.bookings.ListByMember(ctx, memberID)
}

// deduct charges required credits against the member's valid grants, oldest
// grant first, and rejects the transaction when the unmet remainder exceeds
// the overage cap. Within the cap the remainder is accepted as a soft billing
// concern, not a debt written to any grant.
func (s *BookingService) deduct(ctx context.Context, memberID string, required decimal.Decimal) ([]domain.GrantDelta, decimal.Decimal, error) {
	today := time.Now().UTC()
	grants, err := s.grants.LockValidByMember(ctx, memberID, today)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("lock grants: %w", err)
	}

	alloc := allocation.Hours(required, grants, allocation.Deduct, today)
	if alloc.Unmet.GreaterThan(policy.MaxOverageHours) {
		return nil, decimal.Zero, fmt.Errorf("%w: %s hours uncovered", domain.ErrInsufficientCredit, alloc.Unmet.String())
	}

	if err := s.applyHourDeltas(ctx, memberID, alloc.Applied); err != nil {
		return nil, decimal.Zero, err
	}

	return alloc.Applied, alloc.Unmet, nil
}

// refund returns credits to the member's valid grants, most recently charged
// grant first. A shortfall (a grant left its validity window since the
// charge) is logged with full context and does not block the transaction.
func (s *BookingService) refund(ctx context.Context, memberID string, amount decimal.Decimal, bookingID string) ([]domain.GrantDelta, error) {
	today := time.Now().UTC()
	grants, err := s.grants.LockValidByMember(ctx, memberID, today)
	if err != nil {
		return nil, fmt.Errorf("lock grants: %w", err)
	}

	alloc := allocation.Hours(amount, grants, allocation.Refund, today)
	if alloc.Unmet.IsPositive() {
		grantIDs := make([]string, 0, len(grants))
		for _, g := range grants {
			grantIDs = append(grantIDs, g.ID)
		}
		s.logger.Error("refund shortfall",
			logger.String("booking_id", bookingID),
			logger.String("member_id", memberID),
			logger.String("requested", amount.String()),
			logger.String("unmet", alloc.Unmet.String()),
			logger.Any("grant_ids", grantIDs),
		)
	}

	if err := s.applyHourDeltas(ctx, memberID, alloc.Applied); err != nil {
		return nil, err
	}

	return alloc.Applied, nil
}

func (s *BookingService) applyHourDeltas(ctx context.Context, memberID string, deltas []domain.GrantDelta) error {
	for _, d := range deltas {
		if err := s.grants.AddHoursUsed(ctx, d.GrantID, d.Hours); err != nil {
			if errors.Is(err, domain.ErrGrantNotFound) {
				s.logger.Error("grant delta matched no row",
					logger.String("member_id", memberID),
					logger.String("grant_id", d.GrantID),
					logger.String("delta", d.Hours.String()),
				)
				return fmt.Errorf("%w: grant %s", domain.ErrLedgerInconsistency, d.GrantID)
			}
			return fmt.Errorf("apply grant delta: %w", err)
		}
	}
	return nil
}

func (s *BookingService) loadRoomAndMember(ctx context.Context, roomID string, memberID *string) (*domain.Room, *domain.Member, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, nil, fmt.Errorf("get room: %w", err)
	}
	if !room.Active {
		return nil, nil, domain.ErrRoomNotFound
	}

	var member *domain.Member
	if memberID != nil {
		member, err = s.members.GetByID(ctx, *memberID)
		if err != nil {
			return nil, nil, fmt.Errorf("get member: %w", err)
		}
	}

	return room, member, nil
}

// actorRole resolves the role the policy checks run against. External
// bookings carry no member and get no exemptions.
func actorRole(member *domain.Member) domain.Role {
	if member == nil {
		return domain.RoleMember
	}
	return member.Role
}

func validateInterval(start, end time.Time, role domain.Role) error {
	if !domain.SameDay(start, end) {
		return fmt.Errorf("%w: booking must start and end on the same day", domain.ErrValidation)
	}
	if end.Sub(start) < policy.MinimumDuration {
		return domain.ErrInvalidDuration
	}
	if !policy.WithinBusinessHours(start, end, role) {
		return domain.ErrOutsideBusinessHours
	}
	return nil
}
