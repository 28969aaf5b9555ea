package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/critter-exchange/critter-exchange/internal/domain/catalog"
)

// CatalogRepository implements catalog.Repository.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) GetByDexNumber(ctx context.Context, dexNumber int) (*catalog.Species, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT dex_number, name FROM species WHERE dex_number=$1
	`, dexNumber)
	var s catalog.Species
	if err := row.Scan(&s.DexNumber, &s.Name); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *CatalogRepository) GetByDexNumbers(ctx context.Context, dexNumbers []int) (map[int]*catalog.Species, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT dex_number, name FROM species WHERE dex_number = ANY($1)
	`, dexNumbers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	species := make(map[int]*catalog.Species, len(dexNumbers))
	for rows.Next() {
		var s catalog.Species
		if err := rows.Scan(&s.DexNumber, &s.Name); err != nil {
			return nil, err
		}
		species[s.DexNumber] = &s
	}
	return species, rows.Err()
}
