package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

// tradeRepository is an in-memory TradeRepository with the same atomicity
// contract as the postgres implementation: Mutate serializes on the store
// lock and writes only when the mutation callback succeeds.
type tradeRepository struct {
	mu     sync.Mutex
	trades map[uuid.UUID]*domain.TradeRequest
}

func NewTradeRepository() repository.TradeRepository {
	return &tradeRepository{trades: make(map[uuid.UUID]*domain.TradeRequest)}
}

func cloneTrade(t *domain.TradeRequest) *domain.TradeRequest {
	c := *t
	c.CompletedBy = append([]string(nil), t.CompletedBy...)
	return &c
}

func (r *tradeRepository) Create(ctx context.Context, trade *domain.TradeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	trade.CreatedAt = now
	trade.UpdatedAt = now
	r.trades[trade.ID] = cloneTrade(trade)
	return nil
}

func (r *tradeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TradeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trade, ok := r.trades[id]
	if !ok {
		return nil, domain.ErrTradeNotFound
	}
	return cloneTrade(trade), nil
}

func (r *tradeRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(*domain.TradeRequest) error) (*domain.TradeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.trades[id]
	if !ok {
		return nil, domain.ErrTradeNotFound
	}

	// The callback works on a copy so a failed mutation leaves the stored
	// record untouched.
	trade := cloneTrade(stored)
	if err := fn(trade); err != nil {
		return nil, err
	}
	trade.UpdatedAt = time.Now().UTC()
	r.trades[id] = cloneTrade(trade)
	return trade, nil
}

func (r *tradeRepository) ListSent(ctx context.Context, senderID uuid.UUID) ([]*domain.TradeRequest, error) {
	return r.listBy(func(t *domain.TradeRequest) bool { return t.SenderID == senderID })
}

func (r *tradeRepository) ListReceived(ctx context.Context, receiverID uuid.UUID) ([]*domain.TradeRequest, error) {
	return r.listBy(func(t *domain.TradeRequest) bool { return t.ReceiverID == receiverID })
}

func (r *tradeRepository) listBy(match func(*domain.TradeRequest) bool) ([]*domain.TradeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trades := []*domain.TradeRequest{}
	for _, t := range r.trades {
		if match(t) {
			trades = append(trades, cloneTrade(t))
		}
	}
	sort.Slice(trades, func(i, j int) bool {
		return trades[i].CreatedAt.After(trades[j].CreatedAt)
	})
	return trades, nil
}

func (r *tradeRepository) ExistsNonPendingBySkill(ctx context.Context, skillID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.trades {
		if t.Status == domain.TradeStatusPending {
			continue
		}
		if t.SenderOfferedSkillID == skillID || t.ReceiverOfferedSkillID == skillID {
			return true, nil
		}
	}
	return false, nil
}
