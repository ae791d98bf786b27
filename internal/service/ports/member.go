package ports

import (
	"context"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

type MemberRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
}
