package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func newAcceptedTrade(t *testing.T) *TradeRequest {
	t.Helper()
	tr := newPendingTrade()
	if err := tr.Accept(tr.ReceiverID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	return tr
}

func newPendingTrade() *TradeRequest {
	return &TradeRequest{
		ID:                     uuid.New(),
		SenderID:               uuid.New(),
		ReceiverID:             uuid.New(),
		SenderOfferedSkillID:   uuid.New(),
		ReceiverOfferedSkillID: uuid.New(),
		Status:                 TradeStatusPending,
	}
}

func TestAccept(t *testing.T) {
	tr := newPendingTrade()

	if err := tr.Accept(tr.SenderID); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("sender accept: expected ErrNotAuthorized, got %v", err)
	}
	if tr.Status != TradeStatusPending {
		t.Errorf("failed accept mutated status to %s", tr.Status)
	}

	if err := tr.Accept(uuid.New()); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("stranger accept: expected ErrNotAuthorized, got %v", err)
	}

	if err := tr.Accept(tr.ReceiverID); err != nil {
		t.Fatalf("receiver accept failed: %v", err)
	}
	if tr.Status != TradeStatusAccepted {
		t.Fatalf("expected accepted, got %s", tr.Status)
	}

	// Accepting again is not a legal transition.
	if err := tr.Accept(tr.ReceiverID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double accept: expected ErrInvalidTransition, got %v", err)
	}
}

func TestReject(t *testing.T) {
	tr := newPendingTrade()

	if err := tr.Reject(tr.SenderID); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("sender reject: expected ErrNotAuthorized, got %v", err)
	}

	if err := tr.Reject(tr.ReceiverID); err != nil {
		t.Fatalf("receiver reject failed: %v", err)
	}
	if tr.Status != TradeStatusRejected {
		t.Fatalf("expected rejected, got %s", tr.Status)
	}
	if !tr.Terminal() {
		t.Error("rejected request should be terminal")
	}

	// No way out of a terminal state.
	if err := tr.Accept(tr.ReceiverID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("accept after reject: expected ErrInvalidTransition, got %v", err)
	}
	if err := tr.ConfirmCompletion(tr.ReceiverID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("confirm after reject: expected ErrInvalidTransition, got %v", err)
	}
}

func TestConfirmCompletionRequiresAccepted(t *testing.T) {
	tr := newPendingTrade()
	if err := tr.ConfirmCompletion(tr.SenderID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("confirm on pending: expected ErrInvalidTransition, got %v", err)
	}
	if tr.Status != TradeStatusPending || len(tr.CompletedBy) != 0 {
		t.Errorf("failed confirm mutated request: status=%s completedBy=%v", tr.Status, tr.CompletedBy)
	}
}

func TestDualConfirmation(t *testing.T) {
	cases := []struct {
		name  string
		first func(tr *TradeRequest) uuid.UUID
	}{
		{"sender first", func(tr *TradeRequest) uuid.UUID { return tr.SenderID }},
		{"receiver first", func(tr *TradeRequest) uuid.UUID { return tr.ReceiverID }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newAcceptedTrade(t)
			first := tc.first(tr)
			second := tr.SenderID
			if first == second {
				second = tr.ReceiverID
			}

			if err := tr.ConfirmCompletion(first); err != nil {
				t.Fatalf("first confirm failed: %v", err)
			}
			if tr.Status != TradeStatusAccepted {
				t.Fatalf("single confirmation completed the trade: %s", tr.Status)
			}
			if !tr.HasConfirmed(first) {
				t.Error("first party confirmation not recorded")
			}

			if err := tr.ConfirmCompletion(second); err != nil {
				t.Fatalf("second confirm failed: %v", err)
			}
			if tr.Status != TradeStatusCompleted {
				t.Fatalf("expected completed after both confirmations, got %s", tr.Status)
			}
			if !tr.Terminal() {
				t.Error("completed request should be terminal")
			}
		})
	}
}

func TestConfirmCompletionIdempotent(t *testing.T) {
	tr := newAcceptedTrade(t)

	if err := tr.ConfirmCompletion(tr.SenderID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if err := tr.ConfirmCompletion(tr.SenderID); err != nil {
		t.Fatalf("repeat confirm failed: %v", err)
	}
	if len(tr.CompletedBy) != 1 {
		t.Fatalf("duplicate confirmation recorded twice: %v", tr.CompletedBy)
	}
	if tr.Status != TradeStatusAccepted {
		t.Fatalf("one party confirming twice completed the trade: %s", tr.Status)
	}
}

func TestConfirmCompletionStranger(t *testing.T) {
	tr := newAcceptedTrade(t)
	if err := tr.ConfirmCompletion(uuid.New()); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
	if len(tr.CompletedBy) != 0 {
		t.Errorf("stranger confirmation recorded: %v", tr.CompletedBy)
	}
}

func TestNoConfirmAfterCompleted(t *testing.T) {
	tr := newAcceptedTrade(t)
	if err := tr.ConfirmCompletion(tr.SenderID); err != nil {
		t.Fatal(err)
	}
	if err := tr.ConfirmCompletion(tr.ReceiverID); err != nil {
		t.Fatal(err)
	}
	if err := tr.ConfirmCompletion(tr.SenderID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("confirm on completed: expected ErrInvalidTransition, got %v", err)
	}
}
