package ports

import (
	"context"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

type RoomRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}
