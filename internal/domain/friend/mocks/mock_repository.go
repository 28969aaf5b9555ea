package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/critter-exchange/critter-exchange/internal/domain/friend"
)

// MockRepository is a mock implementation of friend.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, f *friend.Friendship) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockRepository) GetBetween(ctx context.Context, accountA, accountB uuid.UUID) (*friend.Friendship, error) {
	args := m.Called(ctx, accountA, accountB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*friend.Friendship), args.Error(1)
}

func (m *MockRepository) Approve(ctx context.Context, accountA, accountB uuid.UUID) (bool, error) {
	args := m.Called(ctx, accountA, accountB)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, accountA, accountB uuid.UUID, approved bool) (bool, error) {
	args := m.Called(ctx, accountA, accountB, approved)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListApproved(ctx context.Context, accountID uuid.UUID) ([]*friend.Friendship, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*friend.Friendship), args.Error(1)
}

func (m *MockRepository) ListIncomingRequests(ctx context.Context, accountID uuid.UUID) ([]*friend.Friendship, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*friend.Friendship), args.Error(1)
}
