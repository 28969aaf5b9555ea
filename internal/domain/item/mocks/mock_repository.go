package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/critter-exchange/critter-exchange/internal/domain/item"
)

// MockRepository is a mock implementation of item.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, itemID uuid.UUID) (*item.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*item.Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}

func (m *MockRepository) SwapOwners(ctx context.Context, itemA, expectedOwnerA, itemB, expectedOwnerB uuid.UUID) (bool, error) {
	args := m.Called(ctx, itemA, expectedOwnerA, itemB, expectedOwnerB)
	return args.Bool(0), args.Error(1)
}
