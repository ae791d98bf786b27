package service

import (
	"context"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/service/ports"
)

type RoomService struct {
	repo ports.RoomRepo
}

func NewRoomService(repo ports.RoomRepo) *RoomService {
	return &RoomService{repo: repo}
}

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.List(ctx)
}
