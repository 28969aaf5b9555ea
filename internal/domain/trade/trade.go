package trade

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents trade status.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

var (
	ErrInvalidRequest   = errors.New("invalid trade request")
	ErrNotFound         = errors.New("trade not found")
	ErrForbidden        = errors.New("account is not allowed to decide this trade")
	ErrItemLocked       = errors.New("item is already part of a pending trade")
	ErrItemNotOwned     = errors.New("item ownership does not match the trade record")
	ErrAlreadyDecided   = errors.New("trade already decided")
	ErrSettlementFailed = errors.New("settlement failed, retry")
)

// Trade represents one negotiated exchange of two items between two accounts.
type Trade struct {
	ID              int64      `json:"id"`
	TradeID         uuid.UUID  `json:"tradeId"`
	RequesterID     uuid.UUID  `json:"requesterId"`
	ReceiverID      uuid.UUID  `json:"receiverId"`
	RequesterItemID uuid.UUID  `json:"requesterItemId"`
	ReceiverItemID  uuid.UUID  `json:"receiverItemId"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	DecidedAt       *time.Time `json:"decidedAt,omitempty"`
}

// NewTrade creates a pending trade proposal.
func NewTrade(requesterID, receiverID, requesterItemID, receiverItemID uuid.UUID) *Trade {
	return &Trade{
		TradeID:         uuid.New(),
		RequesterID:     requesterID,
		ReceiverID:      receiverID,
		RequesterItemID: requesterItemID,
		ReceiverItemID:  receiverItemID,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}

// IsDecided returns true once the trade left the pending state.
func (t *Trade) IsDecided() bool {
	return t.Status != StatusPending
}

// References reports whether the trade involves the given item on either side.
func (t *Trade) References(itemID uuid.UUID) bool {
	return t.RequesterItemID == itemID || t.ReceiverItemID == itemID
}

// CanTransitionTo checks if a transition to the target status is valid.
// Both ACCEPTED and REJECTED are absorbing.
func (t *Trade) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusPending:  {StatusAccepted, StatusRejected},
		StatusAccepted: {},
		StatusRejected: {},
	}
	allowed, ok := transitions[t.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// Earlier is the tie-break ordering for racing proposals: creation time
// first, trade id ordering when the timestamps collide.
func (t *Trade) Earlier(other *Trade) bool {
	if t.CreatedAt.Equal(other.CreatedAt) {
		return strings.Compare(t.TradeID.String(), other.TradeID.String()) < 0
	}
	return t.CreatedAt.Before(other.CreatedAt)
}
