package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/critter-exchange/critter-exchange/internal/domain/trade"
)

// MockRepository is a mock implementation of trade.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, t *trade.Trade) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, tradeID uuid.UUID) (*trade.Trade, error) {
	args := m.Called(ctx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Trade), args.Error(1)
}

func (m *MockRepository) FindPendingByItem(ctx context.Context, itemID uuid.UUID) ([]*trade.Trade, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Trade), args.Error(1)
}

func (m *MockRepository) FindPendingByParticipant(ctx context.Context, accountID uuid.UUID) ([]*trade.Trade, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Trade), args.Error(1)
}

func (m *MockRepository) FindPendingBetween(ctx context.Context, accountA, accountB uuid.UUID) ([]*trade.Trade, error) {
	args := m.Called(ctx, accountA, accountB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Trade), args.Error(1)
}

func (m *MockRepository) FindPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*trade.Trade, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Trade), args.Error(1)
}

func (m *MockRepository) FindPendingByRequester(ctx context.Context, requesterID uuid.UUID) ([]*trade.Trade, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Trade), args.Error(1)
}

func (m *MockRepository) FindAllPending(ctx context.Context) ([]*trade.Trade, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Trade), args.Error(1)
}

func (m *MockRepository) FindAcceptedSince(ctx context.Context, since time.Time) ([]*trade.Trade, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Trade), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, tradeID uuid.UUID, expected, next trade.Status, decidedAt *time.Time) (bool, error) {
	args := m.Called(ctx, tradeID, expected, next, decidedAt)
	return args.Bool(0), args.Error(1)
}
