package friend

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("friendship not found")
	ErrAlreadyExists = errors.New("friendship or request already exists")
	ErrSelfFriend    = errors.New("cannot befriend yourself")
)

// Friendship links two accounts. The pair is unordered; Petitioner is the
// account that sent the request, Approved flips when the other side accepts.
type Friendship struct {
	ID         int64     `json:"id"`
	AccountA   uuid.UUID `json:"accountA"`
	AccountB   uuid.UUID `json:"accountB"`
	Petitioner uuid.UUID `json:"petitioner"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Other returns the counterparty of the given account in this friendship.
func (f *Friendship) Other(accountID uuid.UUID) uuid.UUID {
	if f.AccountA == accountID {
		return f.AccountB
	}
	return f.AccountA
}
