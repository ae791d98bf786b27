package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/allocation"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/service/ports"
)

// EntryService runs the carnet entry ledger: check-ins consume day-pass
// tokens from the member's valid grants with the same FIFO discipline the
// booking allocator uses, and edits reconcile the signed token delta. Tokens
// have no overage: any unmet count rejects the transaction.
type EntryService struct {
	tx      ports.TxManager
	grants  ports.GrantRepo
	entries ports.EntryRepo
	members ports.MemberRepo
	logger  logger.Logger
}

func NewEntryService(
	tx ports.TxManager,
	grants ports.GrantRepo,
	entries ports.EntryRepo,
	members ports.MemberRepo,
	logger logger.Logger,
) *EntryService {
	return &EntryService{
		tx:      tx,
		grants:  grants,
		entries: entries,
		members: members,
		logger:  logger,
	}
}

func (s *EntryService) Register(ctx context.Context, input domain.RegisterEntryInput) (*domain.EntryResult, error) {
	cost := input.Duration.TokenCost()
	if cost == 0 {
		return nil, fmt.Errorf("%w: unknown entry duration %q", domain.ErrValidation, input.Duration)
	}

	var res *domain.EntryResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		member, err := s.members.GetByID(ctx, input.MemberID)
		if err != nil {
			return fmt.Errorf("get member: %w", err)
		}

		applied, err := s.allocateTokens(ctx, member.ID, cost, allocation.Deduct, input.EntryDate, "")
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		entry := &domain.EntryRecord{
			ID:             uuid.New().String(),
			GrantID:        applied[0].GrantID,
			MemberID:       member.ID,
			EntryDate:      domain.DayOf(input.EntryDate),
			Duration:       input.Duration,
			TokensConsumed: cost,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if err := s.entries.Create(ctx, entry); err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		res = &domain.EntryResult{Entry: entry, Member: member, Applied: applied}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("entry registered",
		logger.String("entry_id", res.Entry.ID),
		logger.String("member_id", res.Entry.MemberID),
		logger.Int("tokens", res.Entry.TokensConsumed),
	)

	return res, nil
}

func (s *EntryService) Edit(ctx context.Context, entryID string, input domain.EditEntryInput) (*domain.EntryResult, error) {
	newCost := input.Duration.TokenCost()
	if newCost == 0 {
		return nil, fmt.Errorf("%w: unknown entry duration %q", domain.ErrValidation, input.Duration)
	}

	var res *domain.EntryResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		entry, err := s.entries.GetByID(ctx, entryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		member, err := s.members.GetByID(ctx, entry.MemberID)
		if err != nil {
			return fmt.Errorf("get member: %w", err)
		}

		delta := newCost - entry.TokensConsumed

		var applied []domain.TokenDelta
		switch {
		case delta > 0:
			applied, err = s.allocateTokens(ctx, member.ID, delta, allocation.Deduct, input.EntryDate, entry.ID)
		case delta < 0:
			applied, err = s.allocateTokens(ctx, member.ID, -delta, allocation.Refund, input.EntryDate, entry.ID)
		}
		if err != nil {
			return err
		}

		entry.EntryDate = domain.DayOf(input.EntryDate)
		entry.Duration = input.Duration
		entry.TokensConsumed = newCost
		entry.UpdatedAt = time.Now().UTC()

		if err := s.entries.Update(ctx, entry); err != nil {
			return fmt.Errorf("update entry: %w", err)
		}

		res = &domain.EntryResult{Entry: entry, Member: member, Applied: applied}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("entry edited",
		logger.String("entry_id", res.Entry.ID),
		logger.Int("tokens", res.Entry.TokensConsumed),
	)

	return res, nil
}

// allocateTokens runs the token allocator over the grants valid on the entry
// date and persists the resulting entries_used deltas. Deduction rejects any
// unmet remainder; a refund shortfall is logged and accepted, matching the
// hour allocator.
func (s *EntryService) allocateTokens(ctx context.Context, memberID string, amount int, dir allocation.Direction, day time.Time, entryID string) ([]domain.TokenDelta, error) {
	grants, err := s.grants.LockValidByMember(ctx, memberID, day)
	if err != nil {
		return nil, fmt.Errorf("lock grants: %w", err)
	}

	alloc := allocation.Tokens(amount, grants, dir, day)
	if alloc.Unmet > 0 {
		if dir == allocation.Deduct {
			return nil, fmt.Errorf("%w: %d entry tokens uncovered", domain.ErrInsufficientCredit, alloc.Unmet)
		}
		s.logger.Error("token refund shortfall",
			logger.String("entry_id", entryID),
			logger.String("member_id", memberID),
			logger.Int("requested", amount),
			logger.Int("unmet", alloc.Unmet),
		)
	}

	for _, d := range alloc.Applied {
		if err := s.grants.AddEntriesUsed(ctx, d.GrantID, d.Tokens); err != nil {
			if errors.Is(err, domain.ErrGrantNotFound) {
				s.logger.Error("token delta matched no row",
					logger.String("member_id", memberID),
					logger.String("grant_id", d.GrantID),
					logger.Int("delta", d.Tokens),
				)
				return nil, fmt.Errorf("%w: grant %s", domain.ErrLedgerInconsistency, d.GrantID)
			}
			return nil, fmt.Errorf("apply token delta: %w", err)
		}
	}

	return alloc.Applied, nil
}
