package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/critter-exchange/critter-exchange/internal/domain/account"
)

// AccountRepository implements account.Repository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, account_id, username, email, password_hash, profile_picture, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (account_id, username, email, password_hash, profile_picture, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, a.AccountID, a.Username, a.Email, a.PasswordHash, a.ProfilePicture, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*account.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE account_id=$1
	`, accountID)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE email=$1
	`, email)
	return scanAccount(row)
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE username=$1
	`, username)
	return scanAccount(row)
}

func (r *AccountRepository) UpdateUsername(ctx context.Context, accountID uuid.UUID, username string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE accounts SET username=$1, updated_at=$2 WHERE account_id=$3
	`, username, time.Now().UTC(), accountID)
	return err
}

func (r *AccountRepository) UpdateProfilePicture(ctx context.Context, accountID uuid.UUID, pictureURL string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE accounts SET profile_picture=$1, updated_at=$2 WHERE account_id=$3
	`, pictureURL, time.Now().UTC(), accountID)
	return err
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var a account.Account
	if err := row.Scan(&a.ID, &a.AccountID, &a.Username, &a.Email, &a.PasswordHash, &a.ProfilePicture, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
