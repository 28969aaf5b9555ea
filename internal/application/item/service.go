package item

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domainCatalog "github.com/critter-exchange/critter-exchange/internal/domain/catalog"
	domain "github.com/critter-exchange/critter-exchange/internal/domain/item"
)

// Service handles inventory listing and the initial-capture grant path.
type Service struct {
	repo        domain.Repository
	catalogRepo domainCatalog.Repository
	logger      zerolog.Logger
}

// NewService creates an item service.
func NewService(repo domain.Repository, catalogRepo domainCatalog.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:        repo,
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("service", "item").Logger(),
	}
}

// InventoryEntry is an owned creature with its species display name.
type InventoryEntry struct {
	ItemID      uuid.UUID `json:"itemId"`
	SpeciesID   int       `json:"speciesId"`
	SpeciesName string    `json:"speciesName"`
	OwnerID     uuid.UUID `json:"ownerId"`
	ObtainedAt  time.Time `json:"obtainedAt"`
}

// ListInventory returns an account's creatures, newest first.
func (s *Service) ListInventory(ctx context.Context, ownerID uuid.UUID) ([]*InventoryEntry, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, items)
}

// Grant creates a new creature for an account, outside the trade path. Used
// by the initial capture flow and seeding.
func (s *Service) Grant(ctx context.Context, ownerID uuid.UUID, speciesID int) (*domain.Item, error) {
	species, err := s.catalogRepo.GetByDexNumber(ctx, speciesID)
	if err != nil {
		return nil, err
	}
	if species == nil {
		return nil, domainCatalog.ErrSpeciesNotFound
	}
	it := domain.NewItem(speciesID, ownerID)
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	s.logger.Info().Str("item_id", it.ItemID.String()).Int("species_id", speciesID).Str("owner_id", ownerID.String()).Msg("item granted")
	return it, nil
}

func (s *Service) enrich(ctx context.Context, items []*domain.Item) ([]*InventoryEntry, error) {
	dexNumbers := make([]int, 0, len(items))
	seen := make(map[int]bool)
	for _, it := range items {
		if !seen[it.SpeciesID] {
			seen[it.SpeciesID] = true
			dexNumbers = append(dexNumbers, it.SpeciesID)
		}
	}
	species, err := s.catalogRepo.GetByDexNumbers(ctx, dexNumbers)
	if err != nil {
		return nil, err
	}
	entries := make([]*InventoryEntry, 0, len(items))
	for _, it := range items {
		entry := &InventoryEntry{
			ItemID:     it.ItemID,
			SpeciesID:  it.SpeciesID,
			OwnerID:    it.OwnerID,
			ObtainedAt: it.ObtainedAt,
		}
		if sp := species[it.SpeciesID]; sp != nil {
			entry.SpeciesName = sp.Name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
