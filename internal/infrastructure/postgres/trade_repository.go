package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/critter-exchange/critter-exchange/internal/domain/trade"
)

// TradeRepository implements trade.Repository.
type TradeRepository struct {
	pool *pgxpool.Pool
}

func NewTradeRepository(pool *pgxpool.Pool) *TradeRepository {
	return &TradeRepository{pool: pool}
}

const tradeColumns = `id, trade_id, requester_id, receiver_id, requester_item_id, receiver_item_id, status, created_at, decided_at`

func (r *TradeRepository) Create(ctx context.Context, t *trade.Trade) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO trades
		(trade_id, requester_id, receiver_id, requester_item_id, receiver_item_id, status, created_at, decided_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, t.TradeID, t.RequesterID, t.ReceiverID, t.RequesterItemID, t.ReceiverItemID, t.Status, t.CreatedAt, t.DecidedAt)
	return err
}

func (r *TradeRepository) GetByID(ctx context.Context, tradeID uuid.UUID) (*trade.Trade, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+tradeColumns+` FROM trades WHERE trade_id=$1
	`, tradeID)
	return scanTrade(row)
}

func (r *TradeRepository) FindPendingByItem(ctx context.Context, itemID uuid.UUID) ([]*trade.Trade, error) {
	return r.queryTrades(ctx, `
		SELECT `+tradeColumns+` FROM trades
		WHERE status=$1 AND (requester_item_id=$2 OR receiver_item_id=$2)
		ORDER BY created_at ASC, trade_id ASC
	`, trade.StatusPending, itemID)
}

func (r *TradeRepository) FindPendingByParticipant(ctx context.Context, accountID uuid.UUID) ([]*trade.Trade, error) {
	return r.queryTrades(ctx, `
		SELECT `+tradeColumns+` FROM trades
		WHERE status=$1 AND (requester_id=$2 OR receiver_id=$2)
		ORDER BY created_at ASC, trade_id ASC
	`, trade.StatusPending, accountID)
}

func (r *TradeRepository) FindPendingBetween(ctx context.Context, accountA, accountB uuid.UUID) ([]*trade.Trade, error) {
	return r.queryTrades(ctx, `
		SELECT `+tradeColumns+` FROM trades
		WHERE status=$1 AND (
			(requester_id=$2 AND receiver_id=$3) OR (requester_id=$3 AND receiver_id=$2)
		)
		ORDER BY created_at ASC, trade_id ASC
	`, trade.StatusPending, accountA, accountB)
}

func (r *TradeRepository) FindPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*trade.Trade, error) {
	return r.queryTrades(ctx, `
		SELECT `+tradeColumns+` FROM trades
		WHERE status=$1 AND receiver_id=$2
		ORDER BY created_at ASC, trade_id ASC
	`, trade.StatusPending, receiverID)
}

func (r *TradeRepository) FindPendingByRequester(ctx context.Context, requesterID uuid.UUID) ([]*trade.Trade, error) {
	return r.queryTrades(ctx, `
		SELECT `+tradeColumns+` FROM trades
		WHERE status=$1 AND requester_id=$2
		ORDER BY created_at ASC, trade_id ASC
	`, trade.StatusPending, requesterID)
}

func (r *TradeRepository) FindAllPending(ctx context.Context) ([]*trade.Trade, error) {
	return r.queryTrades(ctx, `
		SELECT `+tradeColumns+` FROM trades
		WHERE status=$1
		ORDER BY created_at ASC, trade_id ASC
	`, trade.StatusPending)
}

func (r *TradeRepository) FindAcceptedSince(ctx context.Context, since time.Time) ([]*trade.Trade, error) {
	return r.queryTrades(ctx, `
		SELECT `+tradeColumns+` FROM trades
		WHERE status=$1 AND decided_at >= $2
		ORDER BY decided_at ASC
	`, trade.StatusAccepted, since)
}

func (r *TradeRepository) UpdateStatus(ctx context.Context, tradeID uuid.UUID, expected, next trade.Status, decidedAt *time.Time) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE trades SET status=$1, decided_at=$2 WHERE trade_id=$3 AND status=$4
	`, next, decidedAt, tradeID, expected)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() == 1, nil
}

func (r *TradeRepository) queryTrades(ctx context.Context, query string, args ...interface{}) ([]*trade.Trade, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var trades []*trade.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

func scanTrade(row pgx.Row) (*trade.Trade, error) {
	var t trade.Trade
	if err := row.Scan(&t.ID, &t.TradeID, &t.RequesterID, &t.ReceiverID, &t.RequesterItemID, &t.ReceiverItemID, &t.Status, &t.CreatedAt, &t.DecidedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
