package item

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrOwnerConflict = errors.New("item owner changed since read")
)

// Item represents a uniquely owned creature instance.
type Item struct {
	ID         int64     `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	SpeciesID  int       `json:"speciesId"`
	OwnerID    uuid.UUID `json:"ownerId"`
	ObtainedAt time.Time `json:"obtainedAt"`
}

// NewItem creates an item owned by the given account.
func NewItem(speciesID int, ownerID uuid.UUID) *Item {
	return &Item{
		ItemID:     uuid.New(),
		SpeciesID:  speciesID,
		OwnerID:    ownerID,
		ObtainedAt: time.Now().UTC(),
	}
}
