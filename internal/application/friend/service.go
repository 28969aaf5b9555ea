package friend

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domainAccount "github.com/critter-exchange/critter-exchange/internal/domain/account"
	domainCatalog "github.com/critter-exchange/critter-exchange/internal/domain/catalog"
	domain "github.com/critter-exchange/critter-exchange/internal/domain/friend"
	domainItem "github.com/critter-exchange/critter-exchange/internal/domain/item"
)

// Service handles friend requests and the friend list.
type Service struct {
	repo        domain.Repository
	accountRepo domainAccount.Repository
	itemRepo    domainItem.Repository
	catalogRepo domainCatalog.Repository
	logger      zerolog.Logger
}

// NewService creates a friend service.
func NewService(repo domain.Repository, accountRepo domainAccount.Repository, itemRepo domainItem.Repository, catalogRepo domainCatalog.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		itemRepo:    itemRepo,
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("service", "friend").Logger(),
	}
}

// FriendSummary is one entry in an account's friend list.
type FriendSummary struct {
	AccountID      uuid.UUID `json:"accountId"`
	Username       string    `json:"username"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	LatestCreature *string   `json:"latestCreature,omitempty"`
}

// SendRequest creates a pending friendship petitioned by requesterID.
func (s *Service) SendRequest(ctx context.Context, requesterID uuid.UUID, username string) error {
	target, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if target == nil {
		return domainAccount.ErrNotFound
	}
	if target.AccountID == requesterID {
		return domain.ErrSelfFriend
	}
	existing, err := s.repo.GetBetween(ctx, requesterID, target.AccountID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrAlreadyExists
	}
	f := &domain.Friendship{
		AccountA:   requesterID,
		AccountB:   target.AccountID,
		Petitioner: requesterID,
		Approved:   false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return err
	}
	s.logger.Info().Str("requester", requesterID.String()).Str("target", target.AccountID.String()).Msg("friend request sent")
	return nil
}

// AcceptRequest approves the pending request petitioned by the other account.
func (s *Service) AcceptRequest(ctx context.Context, accountID, petitionerID uuid.UUID) error {
	f, err := s.repo.GetBetween(ctx, accountID, petitionerID)
	if err != nil {
		return err
	}
	if f == nil || f.Approved || f.Petitioner != petitionerID {
		return domain.ErrNotFound
	}
	ok, err := s.repo.Approve(ctx, accountID, petitionerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// DenyRequest deletes a pending request addressed to accountID.
func (s *Service) DenyRequest(ctx context.Context, accountID, petitionerID uuid.UUID) error {
	f, err := s.repo.GetBetween(ctx, accountID, petitionerID)
	if err != nil {
		return err
	}
	if f == nil || f.Approved || f.Petitioner != petitionerID {
		return domain.ErrNotFound
	}
	ok, err := s.repo.Delete(ctx, accountID, petitionerID, false)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveFriend deletes an approved friendship.
func (s *Service) RemoveFriend(ctx context.Context, accountID, friendID uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, accountID, friendID, true)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// AreFriends reports whether the two accounts share an approved friendship.
func (s *Service) AreFriends(ctx context.Context, accountA, accountB uuid.UUID) (bool, error) {
	f, err := s.repo.GetBetween(ctx, accountA, accountB)
	if err != nil {
		return false, err
	}
	return f != nil && f.Approved, nil
}

// ListFriends returns the approved friends of an account, each with the name
// of their most recently obtained creature.
func (s *Service) ListFriends(ctx context.Context, accountID uuid.UUID) ([]*FriendSummary, error) {
	friendships, err := s.repo.ListApproved(ctx, accountID)
	if err != nil {
		return nil, err
	}
	summaries := make([]*FriendSummary, 0, len(friendships))
	for _, f := range friendships {
		summary, err := s.summarize(ctx, f.Other(accountID))
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ListIncomingRequests returns the accounts waiting on accountID's answer.
func (s *Service) ListIncomingRequests(ctx context.Context, accountID uuid.UUID) ([]*FriendSummary, error) {
	requests, err := s.repo.ListIncomingRequests(ctx, accountID)
	if err != nil {
		return nil, err
	}
	summaries := make([]*FriendSummary, 0, len(requests))
	for _, f := range requests {
		summary, err := s.summarize(ctx, f.Petitioner)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Service) summarize(ctx context.Context, accountID uuid.UUID) (*FriendSummary, error) {
	a, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domainAccount.ErrNotFound
	}
	summary := &FriendSummary{
		AccountID:      a.AccountID,
		Username:       a.Username,
		ProfilePicture: a.ProfilePicture,
	}
	items, err := s.itemRepo.ListByOwner(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		// items are ordered newest first
		species, err := s.catalogRepo.GetByDexNumber(ctx, items[0].SpeciesID)
		if err != nil {
			return nil, err
		}
		if species != nil {
			summary.LatestCreature = &species.Name
		}
	}
	return summary, nil
}
