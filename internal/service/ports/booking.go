package ports

import (
	"context"
	"time"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ListConfirmedByRoomDay(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error)
	// LockConfirmedByRoomDay is ListConfirmedByRoomDay with the rows locked
	// for update; it must run inside a transaction.
	LockConfirmedByRoomDay(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error)
}
