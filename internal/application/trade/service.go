package trade

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domainAccount "github.com/critter-exchange/critter-exchange/internal/domain/account"
	domainCatalog "github.com/critter-exchange/critter-exchange/internal/domain/catalog"
	domainItem "github.com/critter-exchange/critter-exchange/internal/domain/item"
	"github.com/critter-exchange/critter-exchange/internal/domain/notification"
	domain "github.com/critter-exchange/critter-exchange/internal/domain/trade"
)

// Service is the trade protocol engine. It enforces the one-pending-trade-
// per-item invariant optimistically: proposals are admitted without a global
// lock, and races are resolved after insert by re-scanning and denying every
// proposal but the earliest. Who may propose to whom is the caller's concern;
// the engine only checks ownership and item locks.
type Service struct {
	repo           domain.Repository
	itemRepo       domainItem.Repository
	accountRepo    domainAccount.Repository
	catalogRepo    domainCatalog.Repository
	dispatcher     notification.Dispatcher
	recoveryWindow time.Duration
	logger         zerolog.Logger
}

// NewService creates the trade service.
func NewService(
	repo domain.Repository,
	itemRepo domainItem.Repository,
	accountRepo domainAccount.Repository,
	catalogRepo domainCatalog.Repository,
	dispatcher notification.Dispatcher,
	recoveryWindow time.Duration,
	logger zerolog.Logger,
) *Service {
	return &Service{
		repo:           repo,
		itemRepo:       itemRepo,
		accountRepo:    accountRepo,
		catalogRepo:    catalogRepo,
		dispatcher:     dispatcher,
		recoveryWindow: recoveryWindow,
		logger:         logger.With().Str("service", "trade").Logger(),
	}
}

// ProposeInput defines a trade proposal.
type ProposeInput struct {
	ReceiverID      uuid.UUID
	RequesterItemID uuid.UUID
	ReceiverItemID  uuid.UUID
}

// Propose creates a pending trade between the requester and the receiver.
// Returns ErrItemLocked when either item is already held by a pending trade,
// including when this proposal loses the post-insert tie-break.
func (s *Service) Propose(ctx context.Context, requesterID uuid.UUID, input ProposeInput) (*domain.Trade, error) {
	if requesterID == uuid.Nil || input.ReceiverID == uuid.Nil ||
		input.RequesterItemID == uuid.Nil || input.ReceiverItemID == uuid.Nil {
		return nil, domain.ErrInvalidRequest
	}
	if requesterID == input.ReceiverID || input.RequesterItemID == input.ReceiverItemID {
		return nil, domain.ErrInvalidRequest
	}

	receiver, err := s.accountRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, domain.ErrNotFound
	}

	requesterItem, err := s.itemRepo.GetByID(ctx, input.RequesterItemID)
	if err != nil {
		return nil, err
	}
	receiverItem, err := s.itemRepo.GetByID(ctx, input.ReceiverItemID)
	if err != nil {
		return nil, err
	}
	if requesterItem == nil || receiverItem == nil {
		return nil, domain.ErrNotFound
	}
	if requesterItem.OwnerID != requesterID || receiverItem.OwnerID != input.ReceiverID {
		return nil, domain.ErrItemNotOwned
	}

	// cheap pre-check; the authoritative check is the re-scan below
	for _, itemID := range []uuid.UUID{input.RequesterItemID, input.ReceiverItemID} {
		pending, err := s.repo.FindPendingByItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if len(pending) > 0 {
			return nil, domain.ErrItemLocked
		}
	}

	t := domain.NewTrade(requesterID, input.ReceiverID, input.RequesterItemID, input.ReceiverItemID)
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	survived, err := s.resolveItemRaces(ctx, t)
	if err != nil {
		return nil, err
	}
	if !survived {
		return nil, domain.ErrItemLocked
	}

	s.logger.Info().
		Str("trade_id", t.TradeID.String()).
		Str("requester_id", requesterID.String()).
		Str("receiver_id", input.ReceiverID.String()).
		Msg("trade proposed")
	return t, nil
}

// resolveItemRaces re-scans the pending trades touching either item of t and
// denies every proposal but the earliest. Concurrent proposers run the same
// scan and reach the same survivor, so the conditional rejections are safe to
// race. Returns whether t survived.
func (s *Service) resolveItemRaces(ctx context.Context, t *domain.Trade) (bool, error) {
	competing := map[uuid.UUID]*domain.Trade{t.TradeID: t}
	for _, itemID := range []uuid.UUID{t.RequesterItemID, t.ReceiverItemID} {
		pending, err := s.repo.FindPendingByItem(ctx, itemID)
		if err != nil {
			return false, err
		}
		for _, p := range pending {
			competing[p.TradeID] = p
		}
	}

	survivor := t
	for _, c := range competing {
		if c.Earlier(survivor) {
			survivor = c
		}
	}

	now := time.Now().UTC()
	for _, c := range competing {
		if c.TradeID == survivor.TradeID {
			continue
		}
		rejected, err := s.repo.UpdateStatus(ctx, c.TradeID, domain.StatusPending, domain.StatusRejected, &now)
		if err != nil {
			return false, err
		}
		if rejected {
			s.logger.Info().
				Str("trade_id", c.TradeID.String()).
				Str("survivor_trade_id", survivor.TradeID.String()).
				Msg("racing proposal denied")
		}
	}
	return survivor.TradeID == t.TradeID, nil
}

// Confirm accepts a pending trade and settles it. The status flip to
// ACCEPTED is the commit point; the ownership swap runs second. If the swap
// cannot land, the trade is reverted to PENDING and ErrSettlementFailed is
// returned so the receiver can retry.
func (s *Service) Confirm(ctx context.Context, accountID, tradeID uuid.UUID) (*domain.Trade, error) {
	t, err := s.loadForDecision(ctx, accountID, tradeID)
	if err != nil {
		return nil, err
	}

	requesterItem, err := s.itemRepo.GetByID(ctx, t.RequesterItemID)
	if err != nil {
		return nil, err
	}
	receiverItem, err := s.itemRepo.GetByID(ctx, t.ReceiverItemID)
	if err != nil {
		return nil, err
	}
	if requesterItem == nil || receiverItem == nil ||
		requesterItem.OwnerID != t.RequesterID || receiverItem.OwnerID != t.ReceiverID {
		// ownership drifted since the proposal; abort without touching the
		// record, recovery owns stale-lock cleanup
		return nil, domain.ErrItemNotOwned
	}

	now := time.Now().UTC()
	accepted, err := s.repo.UpdateStatus(ctx, t.TradeID, domain.StatusPending, domain.StatusAccepted, &now)
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, domain.ErrAlreadyDecided
	}
	t.Status = domain.StatusAccepted
	t.DecidedAt = &now

	swapped, err := s.itemRepo.SwapOwners(ctx, t.RequesterItemID, t.RequesterID, t.ReceiverItemID, t.ReceiverID)
	if err != nil || !swapped {
		if revertErr := s.revertAccept(ctx, t.TradeID); revertErr != nil {
			s.logger.Error().Err(revertErr).Str("trade_id", t.TradeID.String()).Msg("compensating revert failed; recovery will replay")
		}
		if err != nil {
			s.logger.Error().Err(err).Str("trade_id", t.TradeID.String()).Msg("ownership swap failed")
		}
		return nil, domain.ErrSettlementFailed
	}

	s.logger.Info().Str("trade_id", t.TradeID.String()).Msg("trade settled")
	s.notifyRequester(ctx, t, notification.OutcomeAccepted)
	return t, nil
}

// Deny rejects a pending trade.
func (s *Service) Deny(ctx context.Context, accountID, tradeID uuid.UUID) (*domain.Trade, error) {
	t, err := s.loadForDecision(ctx, accountID, tradeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rejected, err := s.repo.UpdateStatus(ctx, t.TradeID, domain.StatusPending, domain.StatusRejected, &now)
	if err != nil {
		return nil, err
	}
	if !rejected {
		return nil, domain.ErrAlreadyDecided
	}
	t.Status = domain.StatusRejected
	t.DecidedAt = &now

	s.logger.Info().Str("trade_id", t.TradeID.String()).Msg("trade denied")
	s.notifyRequester(ctx, t, notification.OutcomeRejected)
	return t, nil
}

func (s *Service) loadForDecision(ctx context.Context, accountID, tradeID uuid.UUID) (*domain.Trade, error) {
	t, err := s.repo.GetByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.ReceiverID != accountID {
		return nil, domain.ErrForbidden
	}
	if t.IsDecided() {
		return nil, domain.ErrAlreadyDecided
	}
	return t, nil
}

func (s *Service) revertAccept(ctx context.Context, tradeID uuid.UUID) error {
	reverted, err := s.repo.UpdateStatus(ctx, tradeID, domain.StatusAccepted, domain.StatusPending, nil)
	if err != nil {
		return err
	}
	if reverted {
		s.logger.Warn().Str("trade_id", tradeID.String()).Msg("trade reverted to pending after failed swap")
	}
	return nil
}

// notifyRequester pushes the decision to the requester's live SSE sessions.
// Delivery is best effort; failures are logged and never propagated.
func (s *Service) notifyRequester(ctx context.Context, t *domain.Trade, outcome notification.Outcome) {
	receiver, err := s.accountRepo.GetByID(ctx, t.ReceiverID)
	if err != nil || receiver == nil {
		s.logger.Warn().Err(err).Str("trade_id", t.TradeID.String()).Msg("notification skipped: counterparty lookup failed")
		return
	}
	event := notification.TradeDecidedEvent{
		TradeID:              t.TradeID,
		RequesterID:          t.RequesterID,
		CounterpartyUsername: receiver.Username,
		Outcome:              outcome,
	}
	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn().Err(err).Str("trade_id", t.TradeID.String()).Msg("notification skipped: marshal failed")
		return
	}
	s.dispatcher.BroadcastToAccount(t.RequesterID.String(), notification.NewSSEMessage("trade_decided", data))
}

// TradeItemView is one side of a trade summary.
type TradeItemView struct {
	ItemID      uuid.UUID `json:"itemId"`
	SpeciesID   int       `json:"speciesId"`
	SpeciesName string    `json:"speciesName"`
}

// TradeSummary is a pending trade enriched for display.
type TradeSummary struct {
	TradeID              uuid.UUID     `json:"tradeId"`
	RequesterID          uuid.UUID     `json:"requesterId"`
	ReceiverID           uuid.UUID     `json:"receiverId"`
	CounterpartyUsername string        `json:"counterpartyUsername"`
	RequesterItem        TradeItemView `json:"requesterItem"`
	ReceiverItem         TradeItemView `json:"receiverItem"`
	CreatedAt            time.Time     `json:"createdAt"`
}

// ListIncoming returns pending trades addressed to the account.
func (s *Service) ListIncoming(ctx context.Context, accountID uuid.UUID) ([]*TradeSummary, error) {
	trades, err := s.repo.FindPendingByReceiver(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, trades, accountID)
}

// ListOutgoing returns pending trades proposed by the account.
func (s *Service) ListOutgoing(ctx context.Context, accountID uuid.UUID) ([]*TradeSummary, error) {
	trades, err := s.repo.FindPendingByRequester(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, trades, accountID)
}

// ListWithCounterparty returns pending trades between the two accounts.
func (s *Service) ListWithCounterparty(ctx context.Context, accountID, counterpartyID uuid.UUID) ([]*TradeSummary, error) {
	trades, err := s.repo.FindPendingBetween(ctx, accountID, counterpartyID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, trades, accountID)
}

// ListLockedItems returns the ids of all items held by the account's pending
// trades, both sides of each record.
func (s *Service) ListLockedItems(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	trades, err := s.repo.FindPendingByParticipant(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var locked []uuid.UUID
	for _, t := range trades {
		locked = append(locked, t.RequesterItemID, t.ReceiverItemID)
	}
	return locked, nil
}

func (s *Service) summarize(ctx context.Context, trades []*domain.Trade, viewerID uuid.UUID) ([]*TradeSummary, error) {
	summaries := make([]*TradeSummary, 0, len(trades))
	for _, t := range trades {
		counterpartyID := t.RequesterID
		if viewerID == t.RequesterID {
			counterpartyID = t.ReceiverID
		}
		counterparty, err := s.accountRepo.GetByID(ctx, counterpartyID)
		if err != nil {
			return nil, err
		}
		summary := &TradeSummary{
			TradeID:     t.TradeID,
			RequesterID: t.RequesterID,
			ReceiverID:  t.ReceiverID,
			CreatedAt:   t.CreatedAt,
		}
		if counterparty != nil {
			summary.CounterpartyUsername = counterparty.Username
		}
		requesterView, err := s.itemView(ctx, t.RequesterItemID)
		if err != nil {
			return nil, err
		}
		receiverView, err := s.itemView(ctx, t.ReceiverItemID)
		if err != nil {
			return nil, err
		}
		summary.RequesterItem = requesterView
		summary.ReceiverItem = receiverView
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Service) itemView(ctx context.Context, itemID uuid.UUID) (TradeItemView, error) {
	view := TradeItemView{ItemID: itemID}
	it, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return view, err
	}
	if it == nil {
		return view, nil
	}
	view.SpeciesID = it.SpeciesID
	species, err := s.catalogRepo.GetByDexNumber(ctx, it.SpeciesID)
	if err != nil {
		return view, err
	}
	if species != nil {
		view.SpeciesName = species.Name
	}
	return view, nil
}

// RecoverSettlements repairs interrupted settlements. It replays the
// ownership swap for recently accepted trades whose swap never landed (the
// expected-owner guard makes the replay idempotent) and force-denies
// duplicate pending trades sharing an item.
func (s *Service) RecoverSettlements(ctx context.Context) error {
	since := time.Now().UTC().Add(-s.recoveryWindow)
	accepted, err := s.repo.FindAcceptedSince(ctx, since)
	if err != nil {
		return err
	}
	for _, t := range accepted {
		swapped, err := s.itemRepo.SwapOwners(ctx, t.RequesterItemID, t.RequesterID, t.ReceiverItemID, t.ReceiverID)
		if err != nil {
			s.logger.Error().Err(err).Str("trade_id", t.TradeID.String()).Msg("settlement replay failed")
			continue
		}
		if swapped {
			s.logger.Warn().Str("trade_id", t.TradeID.String()).Msg("settlement replayed for accepted trade")
		}
	}

	pending, err := s.repo.FindAllPending(ctx)
	if err != nil {
		return err
	}
	byItem := make(map[uuid.UUID]*domain.Trade)
	now := time.Now().UTC()
	for _, t := range pending {
		for _, itemID := range []uuid.UUID{t.RequesterItemID, t.ReceiverItemID} {
			holder, ok := byItem[itemID]
			if !ok {
				byItem[itemID] = t
				continue
			}
			loser := t
			if t.Earlier(holder) {
				byItem[itemID] = t
				loser = holder
			}
			rejected, err := s.repo.UpdateStatus(ctx, loser.TradeID, domain.StatusPending, domain.StatusRejected, &now)
			if err != nil {
				return err
			}
			if rejected {
				s.logger.Warn().
					Str("trade_id", loser.TradeID.String()).
					Str("item_id", itemID.String()).
					Msg("duplicate pending trade force-denied during recovery")
			}
		}
	}
	return nil
}
