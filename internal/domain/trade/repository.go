package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence for trade records. Records are never
// deleted; decided trades are kept for history.
type Repository interface {
	Create(ctx context.Context, t *Trade) error
	GetByID(ctx context.Context, tradeID uuid.UUID) (*Trade, error)
	FindPendingByItem(ctx context.Context, itemID uuid.UUID) ([]*Trade, error)
	FindPendingByParticipant(ctx context.Context, accountID uuid.UUID) ([]*Trade, error)
	FindPendingBetween(ctx context.Context, accountA, accountB uuid.UUID) ([]*Trade, error)
	FindPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*Trade, error)
	FindPendingByRequester(ctx context.Context, requesterID uuid.UUID) ([]*Trade, error)
	FindAllPending(ctx context.Context) ([]*Trade, error)
	FindAcceptedSince(ctx context.Context, since time.Time) ([]*Trade, error)
	// UpdateStatus flips the status only while the current status still
	// matches expected. Returns false with no mutation on a lost race.
	UpdateStatus(ctx context.Context, tradeID uuid.UUID, expected, next Status, decidedAt *time.Time) (bool, error)
}
