package item

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for owned items.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, itemID uuid.UUID) (*Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Item, error)
	// SwapOwners atomically sets itemA's owner to expectedOwnerB and itemB's
	// owner to expectedOwnerA, but only while both items still belong to the
	// expected owners. Returns false with no mutation when either guard fails.
	SwapOwners(ctx context.Context, itemA, expectedOwnerA, itemB, expectedOwnerB uuid.UUID) (bool, error)
}
