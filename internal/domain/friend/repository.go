package friend

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for friendships and friend requests.
type Repository interface {
	Create(ctx context.Context, f *Friendship) error
	GetBetween(ctx context.Context, accountA, accountB uuid.UUID) (*Friendship, error)
	Approve(ctx context.Context, accountA, accountB uuid.UUID) (bool, error)
	// Delete removes the relation between the two accounts when its approved
	// flag matches; returns false when nothing was deleted.
	Delete(ctx context.Context, accountA, accountB uuid.UUID, approved bool) (bool, error)
	ListApproved(ctx context.Context, accountID uuid.UUID) ([]*Friendship, error)
	ListIncomingRequests(ctx context.Context, accountID uuid.UUID) ([]*Friendship, error)
}
