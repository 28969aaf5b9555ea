package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewTradeIsPending(t *testing.T) {
	tr := NewTrade(uuid.New(), uuid.New(), uuid.New(), uuid.New())
	if tr.Status != StatusPending {
		t.Fatalf("expected PENDING, got %s", tr.Status)
	}
	if tr.IsDecided() {
		t.Fatal("new trade must not be decided")
	}
	if tr.DecidedAt != nil {
		t.Fatal("new trade must not have a decided timestamp")
	}
}

func TestTransitions(t *testing.T) {
	tr := NewTrade(uuid.New(), uuid.New(), uuid.New(), uuid.New())
	if !tr.CanTransitionTo(StatusAccepted) {
		t.Fatal("pending -> accepted must be allowed")
	}
	if !tr.CanTransitionTo(StatusRejected) {
		t.Fatal("pending -> rejected must be allowed")
	}

	tr.Status = StatusAccepted
	if tr.CanTransitionTo(StatusRejected) || tr.CanTransitionTo(StatusPending) {
		t.Fatal("accepted must be absorbing")
	}

	tr.Status = StatusRejected
	if tr.CanTransitionTo(StatusAccepted) || tr.CanTransitionTo(StatusPending) {
		t.Fatal("rejected must be absorbing")
	}
}

func TestReferences(t *testing.T) {
	reqItem := uuid.New()
	recvItem := uuid.New()
	tr := NewTrade(uuid.New(), uuid.New(), reqItem, recvItem)
	if !tr.References(reqItem) || !tr.References(recvItem) {
		t.Fatal("trade must reference both of its items")
	}
	if tr.References(uuid.New()) {
		t.Fatal("trade must not reference unrelated items")
	}
}

func TestEarlierByCreationTime(t *testing.T) {
	now := time.Now().UTC()
	a := &Trade{TradeID: uuid.New(), CreatedAt: now}
	b := &Trade{TradeID: uuid.New(), CreatedAt: now.Add(time.Millisecond)}
	if !a.Earlier(b) {
		t.Fatal("older trade must win the tie-break")
	}
	if b.Earlier(a) {
		t.Fatal("newer trade must lose the tie-break")
	}
}

func TestEarlierTieBrokenByID(t *testing.T) {
	now := time.Now().UTC()
	a := &Trade{TradeID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), CreatedAt: now}
	b := &Trade{TradeID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), CreatedAt: now}
	if !a.Earlier(b) {
		t.Fatal("lower trade id must win on equal timestamps")
	}
	if b.Earlier(a) {
		t.Fatal("higher trade id must lose on equal timestamps")
	}
}
