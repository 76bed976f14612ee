package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
)

func seedTrade(t *testing.T, repo *tradeRepository, status domain.TradeStatus) *domain.TradeRequest {
	t.Helper()
	trade := &domain.TradeRequest{
		ID:                     uuid.New(),
		SenderID:               uuid.New(),
		ReceiverID:             uuid.New(),
		SenderOfferedSkillID:   uuid.New(),
		ReceiverOfferedSkillID: uuid.New(),
		Status:                 status,
	}
	if err := repo.Create(context.Background(), trade); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return trade
}

func TestMutateNotFound(t *testing.T) {
	repo := NewTradeRepository().(*tradeRepository)
	_, err := repo.Mutate(context.Background(), uuid.New(), func(*domain.TradeRequest) error { return nil })
	if !errors.Is(err, domain.ErrTradeNotFound) {
		t.Fatalf("expected ErrTradeNotFound, got %v", err)
	}
}

func TestMutateFailureLeavesRecordUntouched(t *testing.T) {
	repo := NewTradeRepository().(*tradeRepository)
	trade := seedTrade(t, repo, domain.TradeStatusPending)

	boom := errors.New("boom")
	_, err := repo.Mutate(context.Background(), trade.ID, func(tr *domain.TradeRequest) error {
		tr.Status = domain.TradeStatusAccepted
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}

	got, err := repo.GetByID(context.Background(), trade.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.TradeStatusPending {
		t.Fatalf("failed mutation was persisted: status=%s", got.Status)
	}
}

func TestConcurrentConfirmationsSerialize(t *testing.T) {
	repo := NewTradeRepository().(*tradeRepository)
	trade := seedTrade(t, repo, domain.TradeStatusAccepted)

	var wg sync.WaitGroup
	for _, actor := range []uuid.UUID{trade.SenderID, trade.ReceiverID} {
		wg.Add(1)
		go func(actor uuid.UUID) {
			defer wg.Done()
			_, err := repo.Mutate(context.Background(), trade.ID, func(tr *domain.TradeRequest) error {
				return tr.ConfirmCompletion(actor)
			})
			if err != nil {
				t.Errorf("confirm by %s failed: %v", actor, err)
			}
		}(actor)
	}
	wg.Wait()

	got, err := repo.GetByID(context.Background(), trade.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.TradeStatusCompleted {
		t.Fatalf("expected completed after both confirmations, got %s", got.Status)
	}
	if len(got.CompletedBy) != 2 {
		t.Fatalf("expected both confirmations recorded, got %v", got.CompletedBy)
	}
}

func TestListProjections(t *testing.T) {
	repo := NewTradeRepository().(*tradeRepository)
	trade := seedTrade(t, repo, domain.TradeStatusPending)

	sent, err := repo.ListSent(context.Background(), trade.SenderID)
	if err != nil {
		t.Fatal(err)
	}
	if len(sent) != 1 || sent[0].ID != trade.ID {
		t.Fatalf("unexpected sent list: %v", sent)
	}

	received, err := repo.ListReceived(context.Background(), trade.ReceiverID)
	if err != nil {
		t.Fatal(err)
	}
	if len(received) != 1 || received[0].ID != trade.ID {
		t.Fatalf("unexpected received list: %v", received)
	}

	if other, _ := repo.ListSent(context.Background(), trade.ReceiverID); len(other) != 0 {
		t.Fatalf("receiver should have no sent trades, got %v", other)
	}
}
