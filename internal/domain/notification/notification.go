package notification

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound = errors.New("SSE client not found")
	ErrChannelFull    = errors.New("SSE message channel full")
)

// Outcome of a decided trade, carried in the event payload.
type Outcome string

const (
	OutcomeAccepted Outcome = "ACCEPTED"
	OutcomeRejected Outcome = "REJECTED"
)

// TradeDecidedEvent is pushed to the proposing account when the counterparty
// decides a trade. Delivery is best effort; events for accounts without a
// live session are dropped.
type TradeDecidedEvent struct {
	TradeID              uuid.UUID `json:"trade_id"`
	RequesterID          uuid.UUID `json:"requester_id"`
	CounterpartyUsername string    `json:"counterparty_username"`
	Outcome              Outcome   `json:"outcome"`
}

// SSEClient represents an active SSE connection.
type SSEClient struct {
	ClientID    string
	AccountID   *string
	ConnectedAt time.Time
	MessageChan chan *SSEMessage
}

// NewSSEClient creates a new SSE client.
func NewSSEClient(clientID string, accountID *string) *SSEClient {
	return &SSEClient{
		ClientID:    clientID,
		AccountID:   accountID,
		ConnectedAt: time.Now().UTC(),
		MessageChan: make(chan *SSEMessage, 100),
	}
}

// Close closes the client's message channel.
func (c *SSEClient) Close() {
	close(c.MessageChan)
}

// SSEMessage represents a message to be sent via SSE.
type SSEMessage struct {
	ID        string          `json:"id"`
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewSSEMessage creates a new SSE message.
func NewSSEMessage(event string, data json.RawMessage) *SSEMessage {
	return &SSEMessage{
		ID:        uuid.New().String(),
		Event:     event,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}
