package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for accounts.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, accountID uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	UpdateUsername(ctx context.Context, accountID uuid.UUID, username string) error
	UpdateProfilePicture(ctx context.Context, accountID uuid.UUID, pictureURL string) error
}
