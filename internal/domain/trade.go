package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TradeStatus is the lifecycle state of a trade request. Transitions only
// move forward: pending -> accepted -> completed, or pending -> rejected.
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusAccepted  TradeStatus = "accepted"
	TradeStatusRejected  TradeStatus = "rejected"
	TradeStatusCompleted TradeStatus = "completed"
)

// TradeRequest is a proposal to exchange one offered skill for another
// between two users. Sender offers senderOfferedSkill and receives teaching
// of receiverOfferedSkill in return.
type TradeRequest struct {
	ID                     uuid.UUID   `json:"id" db:"id"`
	SenderID               uuid.UUID   `json:"sender_id" db:"sender_id"`
	ReceiverID             uuid.UUID   `json:"receiver_id" db:"receiver_id"`
	SenderOfferedSkillID   uuid.UUID   `json:"sender_offered_skill_id" db:"sender_offered_skill_id"`
	ReceiverOfferedSkillID uuid.UUID   `json:"receiver_offered_skill_id" db:"receiver_offered_skill_id"`
	Status                 TradeStatus `json:"status" db:"status"`
	Message                *string     `json:"message,omitempty" db:"message"`
	CompletedBy            []string    `json:"completed_by" db:"completed_by"`
	CreatedAt              time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at" db:"updated_at"`
}

// Terminal reports whether the request can no longer change.
func (t *TradeRequest) Terminal() bool {
	return t.Status == TradeStatusRejected || t.Status == TradeStatusCompleted
}

func (t *TradeRequest) IsParty(userID uuid.UUID) bool {
	return t.SenderID == userID || t.ReceiverID == userID
}

// HasConfirmed reports whether the given party already confirmed completion.
func (t *TradeRequest) HasConfirmed(userID uuid.UUID) bool {
	id := userID.String()
	for _, c := range t.CompletedBy {
		if c == id {
			return true
		}
	}
	return false
}

// Accept moves a pending request to accepted. Only the receiver of the
// proposal may accept it.
func (t *TradeRequest) Accept(actor uuid.UUID) error {
	if t.Status != TradeStatusPending {
		return fmt.Errorf("%w: cannot accept a %s request", ErrInvalidTransition, t.Status)
	}
	if actor != t.ReceiverID {
		return fmt.Errorf("%w: only the receiver can accept a trade request", ErrNotAuthorized)
	}
	t.Status = TradeStatusAccepted
	return nil
}

// Reject moves a pending request to the terminal rejected state. Only the
// receiver of the proposal may reject it.
func (t *TradeRequest) Reject(actor uuid.UUID) error {
	if t.Status != TradeStatusPending {
		return fmt.Errorf("%w: cannot reject a %s request", ErrInvalidTransition, t.Status)
	}
	if actor != t.ReceiverID {
		return fmt.Errorf("%w: only the receiver can reject a trade request", ErrNotAuthorized)
	}
	t.Status = TradeStatusRejected
	return nil
}

// ConfirmCompletion records that one party considers the exchange delivered.
// Confirming twice is a no-op. The request reaches completed only once both
// sender and receiver have confirmed, so neither side can close out a trade
// unilaterally.
func (t *TradeRequest) ConfirmCompletion(actor uuid.UUID) error {
	if t.Status != TradeStatusAccepted {
		return fmt.Errorf("%w: cannot confirm completion of a %s request", ErrInvalidTransition, t.Status)
	}
	if !t.IsParty(actor) {
		return fmt.Errorf("%w: only a trade participant can confirm completion", ErrNotAuthorized)
	}
	if !t.HasConfirmed(actor) {
		t.CompletedBy = append(t.CompletedBy, actor.String())
	}
	if t.HasConfirmed(t.SenderID) && t.HasConfirmed(t.ReceiverID) {
		t.Status = TradeStatusCompleted
	}
	return nil
}
