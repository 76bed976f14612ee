package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

type TradeUseCase struct {
	tradeRepo repository.TradeRepository
	skillRepo repository.SkillRepository
}

func NewTradeUseCase(tradeRepo repository.TradeRepository, skillRepo repository.SkillRepository) *TradeUseCase {
	return &TradeUseCase{
		tradeRepo: tradeRepo,
		skillRepo: skillRepo,
	}
}

// CreateTradeRequest carries the exchange terms proposed by the sender.
type CreateTradeRequest struct {
	ReceiverID             uuid.UUID `json:"receiver_id" binding:"required"`
	SenderOfferedSkillID   uuid.UUID `json:"sender_offered_skill_id" binding:"required"`
	ReceiverOfferedSkillID uuid.UUID `json:"receiver_offered_skill_id" binding:"required"`
	Message                *string   `json:"message" binding:"omitempty,max=500"`
}

// Create validates the exchange terms and opens a pending trade request.
// Validation happens before any write: distinct parties, distinct skills,
// and each offered skill owned by the right party with role offered.
func (uc *TradeUseCase) Create(ctx context.Context, senderID uuid.UUID, req *CreateTradeRequest) (*domain.TradeRequest, error) {
	if senderID == req.ReceiverID {
		return nil, fmt.Errorf("%w: cannot trade with yourself", domain.ErrInvalidExchange)
	}
	if req.SenderOfferedSkillID == req.ReceiverOfferedSkillID {
		return nil, fmt.Errorf("%w: both sides reference the same skill", domain.ErrInvalidExchange)
	}

	senderSkill, err := uc.skillRepo.GetByID(ctx, req.SenderOfferedSkillID)
	if err != nil {
		if errors.Is(err, domain.ErrSkillNotFound) {
			return nil, fmt.Errorf("%w: sender offered skill not found", domain.ErrInvalidExchange)
		}
		return nil, err
	}
	if !senderSkill.OwnedBy(senderID) {
		return nil, fmt.Errorf("%w: sender offered skill is not owned by sender", domain.ErrInvalidExchange)
	}
	if !senderSkill.IsOffered() {
		return nil, fmt.Errorf("%w: sender skill %q is not an offered skill", domain.ErrInvalidExchange, senderSkill.Name)
	}

	receiverSkill, err := uc.skillRepo.GetByID(ctx, req.ReceiverOfferedSkillID)
	if err != nil {
		if errors.Is(err, domain.ErrSkillNotFound) {
			return nil, fmt.Errorf("%w: receiver offered skill not found", domain.ErrInvalidExchange)
		}
		return nil, err
	}
	if !receiverSkill.OwnedBy(req.ReceiverID) {
		return nil, fmt.Errorf("%w: receiver offered skill is not owned by receiver", domain.ErrInvalidExchange)
	}
	if !receiverSkill.IsOffered() {
		return nil, fmt.Errorf("%w: receiver skill %q is not an offered skill", domain.ErrInvalidExchange, receiverSkill.Name)
	}

	trade := &domain.TradeRequest{
		ID:                     uuid.New(),
		SenderID:               senderID,
		ReceiverID:             req.ReceiverID,
		SenderOfferedSkillID:   req.SenderOfferedSkillID,
		ReceiverOfferedSkillID: req.ReceiverOfferedSkillID,
		Status:                 domain.TradeStatusPending,
		Message:                req.Message,
		CompletedBy:            []string{},
	}
	if err := uc.tradeRepo.Create(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade request: %w", err)
	}
	return trade, nil
}

// Accept transitions a pending request to accepted on behalf of the receiver.
func (uc *TradeUseCase) Accept(ctx context.Context, tradeID, actingUser uuid.UUID) (*domain.TradeRequest, error) {
	return uc.tradeRepo.Mutate(ctx, tradeID, func(t *domain.TradeRequest) error {
		return t.Accept(actingUser)
	})
}

// Reject transitions a pending request to the terminal rejected state.
func (uc *TradeUseCase) Reject(ctx context.Context, tradeID, actingUser uuid.UUID) (*domain.TradeRequest, error) {
	return uc.tradeRepo.Mutate(ctx, tradeID, func(t *domain.TradeRequest) error {
		return t.Reject(actingUser)
	})
}

// ConfirmCompletion records one party's completion confirmation; the request
// reaches completed once both parties have confirmed.
func (uc *TradeUseCase) ConfirmCompletion(ctx context.Context, tradeID, actingUser uuid.UUID) (*domain.TradeRequest, error) {
	return uc.tradeRepo.Mutate(ctx, tradeID, func(t *domain.TradeRequest) error {
		return t.ConfirmCompletion(actingUser)
	})
}

func (uc *TradeUseCase) ListSent(ctx context.Context, userID uuid.UUID) ([]*domain.TradeRequest, error) {
	return uc.tradeRepo.ListSent(ctx, userID)
}

func (uc *TradeUseCase) ListReceived(ctx context.Context, userID uuid.UUID) ([]*domain.TradeRequest, error) {
	return uc.tradeRepo.ListReceived(ctx, userID)
}
