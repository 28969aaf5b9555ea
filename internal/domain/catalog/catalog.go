package catalog

import (
	"context"
	"errors"
)

var ErrSpeciesNotFound = errors.New("species not found")

// Species describes a creature type from the read-only catalog.
type Species struct {
	DexNumber int    `json:"dexNumber"`
	Name      string `json:"name"`
}

// Repository defines read access to the species catalog.
type Repository interface {
	GetByDexNumber(ctx context.Context, dexNumber int) (*Species, error)
	GetByDexNumbers(ctx context.Context, dexNumbers []int) (map[int]*Species, error)
}
