package service

import (
	"context"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/service/ports"
)

type GrantService struct {
	repo    ports.GrantRepo
	members ports.MemberRepo
}

func NewGrantService(repo ports.GrantRepo, members ports.MemberRepo) *GrantService {
	return &GrantService{repo: repo, members: members}
}

func (s *GrantService) ListByMember(ctx context.Context, memberID string) ([]*domain.CreditGrant, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListByMember(ctx, memberID)
}
