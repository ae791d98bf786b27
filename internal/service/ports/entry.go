package ports

import (
	"context"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

type EntryRepo interface {
	Create(ctx context.Context, e *domain.EntryRecord) error
	GetByID(ctx context.Context, id string) (*domain.EntryRecord, error)
	Update(ctx context.Context, e *domain.EntryRecord) error
}
