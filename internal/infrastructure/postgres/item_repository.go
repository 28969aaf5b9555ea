package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/critter-exchange/critter-exchange/internal/domain/item"
)

// ItemRepository implements item.Repository.
type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO items (item_id, species_id, owner_id, obtained_at)
		VALUES ($1,$2,$3,$4)
	`, it.ItemID, it.SpeciesID, it.OwnerID, it.ObtainedAt)
	return err
}

func (r *ItemRepository) GetByID(ctx context.Context, itemID uuid.UUID) (*item.Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, item_id, species_id, owner_id, obtained_at
		FROM items WHERE item_id=$1
	`, itemID)
	return scanItem(row)
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*item.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, item_id, species_id, owner_id, obtained_at
		FROM items WHERE owner_id=$1 ORDER BY obtained_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SwapOwners performs both conditional updates in one transaction. Each
// UPDATE is guarded by the expected current owner; if either guard misses
// the whole transaction rolls back and no ownership changes.
func (r *ItemRepository) SwapOwners(ctx context.Context, itemA, expectedOwnerA, itemB, expectedOwnerB uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	resA, err := tx.Exec(ctx, `
		UPDATE items SET owner_id=$1 WHERE item_id=$2 AND owner_id=$3
	`, expectedOwnerB, itemA, expectedOwnerA)
	if err != nil {
		return false, err
	}
	resB, err := tx.Exec(ctx, `
		UPDATE items SET owner_id=$1 WHERE item_id=$2 AND owner_id=$3
	`, expectedOwnerA, itemB, expectedOwnerB)
	if err != nil {
		return false, err
	}
	if resA.RowsAffected() != 1 || resB.RowsAffected() != 1 {
		return false, nil
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var it item.Item
	if err := row.Scan(&it.ID, &it.ItemID, &it.SpeciesID, &it.OwnerID, &it.ObtainedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}
