package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/critter-exchange/critter-exchange/internal/domain/account"
)

// Service handles account management.
type Service struct {
	repo   domain.Repository
	logger zerolog.Logger
}

// NewService creates an account service.
func NewService(repo domain.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("service", "account").Logger(),
	}
}

// RegisterInput defines account registration input.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	email := domain.NormalizeEmail(input.Email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyExists
	}
	existing, err = s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := domain.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &domain.Account{
		AccountID:    uuid.New(),
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", a.AccountID.String()).Str("username", a.Username).Msg("account registered")
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	a, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *Service) ChangeUsername(ctx context.Context, accountID uuid.UUID, username string) error {
	if err := domain.ValidateUsername(username); err != nil {
		return err
	}
	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.AccountID != accountID {
		return domain.ErrUsernameTaken
	}
	return s.repo.UpdateUsername(ctx, accountID, username)
}

func (s *Service) ChangeProfilePicture(ctx context.Context, accountID uuid.UUID, pictureURL string) error {
	return s.repo.UpdateProfilePicture(ctx, accountID, pictureURL)
}
