package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/critter-exchange/critter-exchange/internal/domain/friend"
)

// FriendRepository implements friend.Repository. A friendship row is stored
// once; queries match the pair in either column order.
type FriendRepository struct {
	pool *pgxpool.Pool
}

func NewFriendRepository(pool *pgxpool.Pool) *FriendRepository {
	return &FriendRepository{pool: pool}
}

const friendColumns = `id, account_a, account_b, petitioner, approved, created_at`

func (r *FriendRepository) Create(ctx context.Context, f *friend.Friendship) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO friends (account_a, account_b, petitioner, approved, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, f.AccountA, f.AccountB, f.Petitioner, f.Approved, f.CreatedAt)
	return err
}

func (r *FriendRepository) GetBetween(ctx context.Context, accountA, accountB uuid.UUID) (*friend.Friendship, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+friendColumns+` FROM friends
		WHERE (account_a=$1 AND account_b=$2) OR (account_a=$2 AND account_b=$1)
	`, accountA, accountB)
	return scanFriendship(row)
}

func (r *FriendRepository) Approve(ctx context.Context, accountA, accountB uuid.UUID) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE friends SET approved=TRUE
		WHERE approved=FALSE AND ((account_a=$1 AND account_b=$2) OR (account_a=$2 AND account_b=$1))
	`, accountA, accountB)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() == 1, nil
}

func (r *FriendRepository) Delete(ctx context.Context, accountA, accountB uuid.UUID, approved bool) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM friends
		WHERE approved=$3 AND ((account_a=$1 AND account_b=$2) OR (account_a=$2 AND account_b=$1))
	`, accountA, accountB, approved)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() == 1, nil
}

func (r *FriendRepository) ListApproved(ctx context.Context, accountID uuid.UUID) ([]*friend.Friendship, error) {
	return r.queryFriendships(ctx, `
		SELECT `+friendColumns+` FROM friends
		WHERE approved=TRUE AND (account_a=$1 OR account_b=$1)
		ORDER BY created_at ASC
	`, accountID)
}

func (r *FriendRepository) ListIncomingRequests(ctx context.Context, accountID uuid.UUID) ([]*friend.Friendship, error) {
	return r.queryFriendships(ctx, `
		SELECT `+friendColumns+` FROM friends
		WHERE approved=FALSE AND petitioner<>$1 AND (account_a=$1 OR account_b=$1)
		ORDER BY created_at ASC
	`, accountID)
}

func (r *FriendRepository) queryFriendships(ctx context.Context, query string, args ...interface{}) ([]*friend.Friendship, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var friendships []*friend.Friendship
	for rows.Next() {
		f, err := scanFriendship(rows)
		if err != nil {
			return nil, err
		}
		friendships = append(friendships, f)
	}
	return friendships, rows.Err()
}

func scanFriendship(row pgx.Row) (*friend.Friendship, error) {
	var f friend.Friendship
	if err := row.Scan(&f.ID, &f.AccountA, &f.AccountB, &f.Petitioner, &f.Approved, &f.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}
