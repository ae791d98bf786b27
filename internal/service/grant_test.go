package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/michelangelopavia/neunoiapp-sub000/internal/domain"
	"github.com/michelangelopavia/neunoiapp-sub000/internal/service/ports/mocks"
)

func TestGrantService_ListByMember_Success(t *testing.T) {
	grantRepo := mocks.NewMockGrantRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)

	svc := NewGrantService(grantRepo, memberRepo)

	memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(testMember(), nil)
	grantRepo.EXPECT().ListByMember(mock.Anything, "m1").
		Return([]*domain.CreditGrant{activeGrant("g1", 10, 2)}, nil)

	grants, err := svc.ListByMember(context.Background(), "m1")

	require.NoError(t, err)
	assert.Len(t, grants, 1)
}

func TestGrantService_ListByMember_MemberNotFound(t *testing.T) {
	grantRepo := mocks.NewMockGrantRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)

	svc := NewGrantService(grantRepo, memberRepo)

	memberRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrMemberNotFound)

	_, err := svc.ListByMember(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestRoomService_List(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(roomRepo)

	roomRepo.EXPECT().List(mock.Anything).Return([]*domain.Room{testRoom()}, nil)

	rooms, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}
