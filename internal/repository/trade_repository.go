package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
)

// TradeRepository persists trade requests. Mutate is the only way to change
// an existing record: it must apply fn under an atomic read-validate-write on
// that record (transaction with a row lock, or equivalent), commit only if fn
// returns nil, and leave the record untouched otherwise.
type TradeRepository interface {
	Create(ctx context.Context, trade *domain.TradeRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TradeRequest, error)
	Mutate(ctx context.Context, id uuid.UUID, fn func(*domain.TradeRequest) error) (*domain.TradeRequest, error)
	ListSent(ctx context.Context, senderID uuid.UUID) ([]*domain.TradeRequest, error)
	ListReceived(ctx context.Context, receiverID uuid.UUID) ([]*domain.TradeRequest, error)
	ExistsNonPendingBySkill(ctx context.Context, skillID uuid.UUID) (bool, error)
}
