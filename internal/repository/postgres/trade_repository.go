package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

type tradeRepository struct {
	db *sqlx.DB
}

func NewTradeRepository(db *sqlx.DB) repository.TradeRepository {
	return &tradeRepository{db: db}
}

const tradeColumns = `
	id, sender_id, receiver_id, sender_offered_skill_id, receiver_offered_skill_id,
	status, message, completed_by, created_at, updated_at
`

func scanTrade(row sqlx.ColScanner) (*domain.TradeRequest, error) {
	var trade domain.TradeRequest
	err := row.Scan(
		&trade.ID, &trade.SenderID, &trade.ReceiverID,
		&trade.SenderOfferedSkillID, &trade.ReceiverOfferedSkillID,
		&trade.Status, &trade.Message, pq.Array(&trade.CompletedBy),
		&trade.CreatedAt, &trade.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

func (r *tradeRepository) Create(ctx context.Context, trade *domain.TradeRequest) error {
	query := `
		INSERT INTO trade_requests (
			id, sender_id, receiver_id, sender_offered_skill_id, receiver_offered_skill_id,
			status, message, completed_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		trade.ID, trade.SenderID, trade.ReceiverID,
		trade.SenderOfferedSkillID, trade.ReceiverOfferedSkillID,
		trade.Status, trade.Message, pq.Array(trade.CompletedBy),
	).Scan(&trade.CreatedAt, &trade.UpdatedAt)
}

func (r *tradeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TradeRequest, error) {
	query := `SELECT ` + tradeColumns + ` FROM trade_requests WHERE id = $1`
	trade, err := scanTrade(r.db.QueryRowxContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, err
	}
	return trade, nil
}

// Mutate applies fn to the current state of the request inside a transaction
// holding a row lock, so concurrent transitions on the same request serialize.
// If fn returns an error nothing is written.
func (r *tradeRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(*domain.TradeRequest) error) (*domain.TradeRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + tradeColumns + ` FROM trade_requests WHERE id = $1 FOR UPDATE`
	trade, err := scanTrade(tx.QueryRowxContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, err
	}

	if err := fn(trade); err != nil {
		return nil, err
	}

	update := `
		UPDATE trade_requests
		SET status = $1, completed_by = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING updated_at
	`
	if err := tx.QueryRowContext(ctx, update, trade.Status, pq.Array(trade.CompletedBy), trade.ID).Scan(&trade.UpdatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return trade, nil
}

func (r *tradeRepository) ListSent(ctx context.Context, senderID uuid.UUID) ([]*domain.TradeRequest, error) {
	query := `SELECT ` + tradeColumns + ` FROM trade_requests WHERE sender_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, senderID)
}

func (r *tradeRepository) ListReceived(ctx context.Context, receiverID uuid.UUID) ([]*domain.TradeRequest, error) {
	query := `SELECT ` + tradeColumns + ` FROM trade_requests WHERE receiver_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, receiverID)
}

func (r *tradeRepository) list(ctx context.Context, query string, arg interface{}) ([]*domain.TradeRequest, error) {
	rows, err := r.db.QueryxContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trades := []*domain.TradeRequest{}
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}
	return trades, rows.Err()
}

func (r *tradeRepository) ExistsNonPendingBySkill(ctx context.Context, skillID uuid.UUID) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM trade_requests
		WHERE (sender_offered_skill_id = $1 OR receiver_offered_skill_id = $1)
		  AND status != $2
	`
	if err := r.db.GetContext(ctx, &count, query, skillID, domain.TradeStatusPending); err != nil {
		return false, err
	}
	return count > 0, nil
}
