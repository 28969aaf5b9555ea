package account

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/critter-exchange/critter-exchange/internal/domain/account"
	"github.com/critter-exchange/critter-exchange/internal/domain/account/mocks"
)

func TestRegisterSuccess(t *testing.T) {
	repo := new(mocks.MockRepository)
	svc := NewService(repo, zerolog.Nop())

	repo.On("GetByEmail", mock.Anything, "ash@pallet.town").Return(nil, nil)
	repo.On("GetByUsername", mock.Anything, "ash01").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil)

	a, err := svc.Register(context.Background(), RegisterInput{
		Username: "ash01",
		Email:    "Ash@Pallet.Town",
		Password: "pikachu-rules",
	})
	require.NoError(t, err)
	assert.Equal(t, "ash01", a.Username)
	assert.Equal(t, "ash@pallet.town", a.Email)
	assert.NotEqual(t, "pikachu-rules", a.PasswordHash)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(mocks.MockRepository)
	svc := NewService(repo, zerolog.Nop())

	repo.On("GetByEmail", mock.Anything, "ash@pallet.town").Return(&domain.Account{AccountID: uuid.New()}, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "ash01",
		Email:    "ash@pallet.town",
		Password: "pikachu-rules",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUsernameTaken(t *testing.T) {
	repo := new(mocks.MockRepository)
	svc := NewService(repo, zerolog.Nop())

	repo.On("GetByEmail", mock.Anything, "misty@cerulean.city").Return(nil, nil)
	repo.On("GetByUsername", mock.Anything, "misty02").Return(&domain.Account{AccountID: uuid.New()}, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "misty02",
		Email:    "misty@cerulean.city",
		Password: "starmie-forever",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterWeakPassword(t *testing.T) {
	repo := new(mocks.MockRepository)
	svc := NewService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "ash01",
		Email:    "ash@pallet.town",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestChangeUsernameTaken(t *testing.T) {
	repo := new(mocks.MockRepository)
	svc := NewService(repo, zerolog.Nop())
	me := uuid.New()

	repo.On("GetByUsername", mock.Anything, "brock03").Return(&domain.Account{AccountID: uuid.New()}, nil)

	err := svc.ChangeUsername(context.Background(), me, "brock03")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestChangeUsernameToOwnCurrentName(t *testing.T) {
	repo := new(mocks.MockRepository)
	svc := NewService(repo, zerolog.Nop())
	me := uuid.New()

	repo.On("GetByUsername", mock.Anything, "ash01").Return(&domain.Account{AccountID: me}, nil)
	repo.On("UpdateUsername", mock.Anything, me, "ash01").Return(nil)

	require.NoError(t, svc.ChangeUsername(context.Background(), me, "ash01"))
	repo.AssertExpectations(t)
}
