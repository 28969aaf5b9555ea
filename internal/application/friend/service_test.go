package friend

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainAccount "github.com/critter-exchange/critter-exchange/internal/domain/account"
	accountmocks "github.com/critter-exchange/critter-exchange/internal/domain/account/mocks"
	domainCatalog "github.com/critter-exchange/critter-exchange/internal/domain/catalog"
	domain "github.com/critter-exchange/critter-exchange/internal/domain/friend"
	friendmocks "github.com/critter-exchange/critter-exchange/internal/domain/friend/mocks"
	domainItem "github.com/critter-exchange/critter-exchange/internal/domain/item"
	itemmocks "github.com/critter-exchange/critter-exchange/internal/domain/item/mocks"
)

type stubCatalog struct{}

func (s *stubCatalog) GetByDexNumber(ctx context.Context, dexNumber int) (*domainCatalog.Species, error) {
	return &domainCatalog.Species{DexNumber: dexNumber, Name: "Staryu"}, nil
}

func (s *stubCatalog) GetByDexNumbers(ctx context.Context, dexNumbers []int) (map[int]*domainCatalog.Species, error) {
	return nil, nil
}

type fixture struct {
	repo        *friendmocks.MockRepository
	accountRepo *accountmocks.MockRepository
	itemRepo    *itemmocks.MockRepository
	svc         *Service

	ash   uuid.UUID
	misty uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{
		repo:        new(friendmocks.MockRepository),
		accountRepo: new(accountmocks.MockRepository),
		itemRepo:    new(itemmocks.MockRepository),
		ash:         uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		misty:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
	}
	f.svc = NewService(f.repo, f.accountRepo, f.itemRepo, &stubCatalog{}, zerolog.Nop())
	return f
}

func TestSendRequest(t *testing.T) {
	f := newFixture()
	f.accountRepo.On("GetByUsername", mock.Anything, "misty02").Return(&domainAccount.Account{AccountID: f.misty, Username: "misty02"}, nil)
	f.repo.On("GetBetween", mock.Anything, f.ash, f.misty).Return(nil, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*friend.Friendship")).Return(nil)

	require.NoError(t, f.svc.SendRequest(context.Background(), f.ash, "misty02"))
	f.repo.AssertExpectations(t)
}

func TestSendRequestToSelf(t *testing.T) {
	f := newFixture()
	f.accountRepo.On("GetByUsername", mock.Anything, "ash01").Return(&domainAccount.Account{AccountID: f.ash, Username: "ash01"}, nil)

	err := f.svc.SendRequest(context.Background(), f.ash, "ash01")
	assert.ErrorIs(t, err, domain.ErrSelfFriend)
}

func TestSendRequestDuplicate(t *testing.T) {
	f := newFixture()
	f.accountRepo.On("GetByUsername", mock.Anything, "misty02").Return(&domainAccount.Account{AccountID: f.misty}, nil)
	f.repo.On("GetBetween", mock.Anything, f.ash, f.misty).Return(&domain.Friendship{AccountA: f.ash, AccountB: f.misty}, nil)

	err := f.svc.SendRequest(context.Background(), f.ash, "misty02")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestAcceptRequest(t *testing.T) {
	f := newFixture()
	pending := &domain.Friendship{AccountA: f.misty, AccountB: f.ash, Petitioner: f.misty}
	f.repo.On("GetBetween", mock.Anything, f.ash, f.misty).Return(pending, nil)
	f.repo.On("Approve", mock.Anything, f.ash, f.misty).Return(true, nil)

	require.NoError(t, f.svc.AcceptRequest(context.Background(), f.ash, f.misty))
}

func TestAcceptOwnRequest(t *testing.T) {
	f := newFixture()
	// the petitioner cannot approve their own request
	pending := &domain.Friendship{AccountA: f.ash, AccountB: f.misty, Petitioner: f.ash}
	f.repo.On("GetBetween", mock.Anything, f.ash, f.misty).Return(pending, nil)

	err := f.svc.AcceptRequest(context.Background(), f.ash, f.misty)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAreFriends(t *testing.T) {
	f := newFixture()
	f.repo.On("GetBetween", mock.Anything, f.ash, f.misty).Return(&domain.Friendship{
		AccountA: f.ash, AccountB: f.misty, Approved: true,
	}, nil)

	ok, err := f.svc.AreFriends(context.Background(), f.ash, f.misty)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAreFriendsPendingRequest(t *testing.T) {
	f := newFixture()
	f.repo.On("GetBetween", mock.Anything, f.ash, f.misty).Return(&domain.Friendship{
		AccountA: f.ash, AccountB: f.misty, Approved: false,
	}, nil)

	ok, err := f.svc.AreFriends(context.Background(), f.ash, f.misty)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListFriendsIncludesLatestCreature(t *testing.T) {
	f := newFixture()
	f.repo.On("ListApproved", mock.Anything, f.ash).Return([]*domain.Friendship{
		{AccountA: f.ash, AccountB: f.misty, Approved: true},
	}, nil)
	f.accountRepo.On("GetByID", mock.Anything, f.misty).Return(&domainAccount.Account{AccountID: f.misty, Username: "misty02"}, nil)
	f.itemRepo.On("ListByOwner", mock.Anything, f.misty).Return([]*domainItem.Item{
		{ItemID: uuid.New(), SpeciesID: 120, OwnerID: f.misty, ObtainedAt: time.Now().UTC()},
	}, nil)

	friends, err := f.svc.ListFriends(context.Background(), f.ash)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "misty02", friends[0].Username)
	require.NotNil(t, friends[0].LatestCreature)
	assert.Equal(t, "Staryu", *friends[0].LatestCreature)
}

func TestRemoveFriendNotFound(t *testing.T) {
	f := newFixture()
	f.repo.On("Delete", mock.Anything, f.ash, f.misty, true).Return(false, nil)

	err := f.svc.RemoveFriend(context.Background(), f.ash, f.misty)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
