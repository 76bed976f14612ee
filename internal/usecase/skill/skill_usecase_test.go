package skill

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/repository/memory"
)

type fakeSkillStore struct {
	skills map[uuid.UUID]*domain.Skill
}

func newFakeSkillStore() *fakeSkillStore {
	return &fakeSkillStore{skills: map[uuid.UUID]*domain.Skill{}}
}

func (f *fakeSkillStore) Create(_ context.Context, s *domain.Skill) error {
	f.skills[s.ID] = s
	return nil
}

func (f *fakeSkillStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Skill, error) {
	s, ok := f.skills[id]
	if !ok {
		return nil, domain.ErrSkillNotFound
	}
	return s, nil
}

func (f *fakeSkillStore) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Skill, error) {
	return f.byOwner(ownerID, ""), nil
}

func (f *fakeSkillStore) GetByOwnerAndRole(_ context.Context, ownerID uuid.UUID, role domain.SkillRole) ([]*domain.Skill, error) {
	return f.byOwner(ownerID, role), nil
}

func (f *fakeSkillStore) byOwner(ownerID uuid.UUID, role domain.SkillRole) []*domain.Skill {
	var out []*domain.Skill
	for _, s := range f.skills {
		if s.OwnerID == ownerID && (role == "" || s.Role == role) {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeSkillStore) Update(_ context.Context, s *domain.Skill) error {
	if _, ok := f.skills[s.ID]; !ok {
		return domain.ErrSkillNotFound
	}
	f.skills[s.ID] = s
	return nil
}

func (f *fakeSkillStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.skills[id]; !ok {
		return domain.ErrSkillNotFound
	}
	delete(f.skills, id)
	return nil
}

func strptr(s string) *string { return &s }

func TestAddSkillRoleMetadata(t *testing.T) {
	uc := NewSkillUseCase(newFakeSkillStore(), memory.NewTradeRepository())
	owner := uuid.New()

	offered, err := uc.AddSkill(context.Background(), owner, &AddSkillRequest{
		Name:             "Go",
		Role:             "offered",
		ProficiencyLevel: strptr(domain.ProficiencyExpert),
		LearningPriority: strptr(domain.PriorityHigh),
	})
	if err != nil {
		t.Fatalf("add offered skill: %v", err)
	}
	if offered.ProficiencyLevel == nil || *offered.ProficiencyLevel != domain.ProficiencyExpert {
		t.Errorf("offered skill should keep proficiency, got %v", offered.ProficiencyLevel)
	}
	if offered.LearningPriority != nil {
		t.Errorf("offered skill should drop learning priority, got %v", offered.LearningPriority)
	}

	required, err := uc.AddSkill(context.Background(), owner, &AddSkillRequest{
		Name:             "Rust",
		Role:             "required",
		ProficiencyLevel: strptr(domain.ProficiencyBeginner),
		LearningPriority: strptr(domain.PriorityMedium),
	})
	if err != nil {
		t.Fatalf("add required skill: %v", err)
	}
	if required.LearningPriority == nil || *required.LearningPriority != domain.PriorityMedium {
		t.Errorf("required skill should keep learning priority, got %v", required.LearningPriority)
	}
	if required.ProficiencyLevel != nil {
		t.Errorf("required skill should drop proficiency, got %v", required.ProficiencyLevel)
	}
}

func TestUpdateSkillOwnership(t *testing.T) {
	store := newFakeSkillStore()
	uc := NewSkillUseCase(store, memory.NewTradeRepository())
	owner, stranger := uuid.New(), uuid.New()

	skill := &domain.Skill{ID: uuid.New(), OwnerID: owner, Name: "Go", Role: domain.SkillRoleOffered}
	store.skills[skill.ID] = skill

	if _, err := uc.UpdateSkill(context.Background(), stranger, skill.ID, &UpdateSkillRequest{Name: strptr("Golang")}); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Errorf("stranger update: expected ErrNotAuthorized, got %v", err)
	}
	if err := uc.DeleteSkill(context.Background(), stranger, skill.ID); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Errorf("stranger delete: expected ErrNotAuthorized, got %v", err)
	}
}

// A skill referenced by a trade that has left pending is frozen against
// edits and deletion.
func TestSkillLockedByActiveTrade(t *testing.T) {
	ctx := context.Background()
	store := newFakeSkillStore()
	tradeRepo := memory.NewTradeRepository()
	uc := NewSkillUseCase(store, tradeRepo)

	alice, bob := uuid.New(), uuid.New()
	aliceSkill := &domain.Skill{ID: uuid.New(), OwnerID: alice, Name: "React", Role: domain.SkillRoleOffered}
	bobSkill := &domain.Skill{ID: uuid.New(), OwnerID: bob, Name: "Docker", Role: domain.SkillRoleOffered}
	store.skills[aliceSkill.ID] = aliceSkill
	store.skills[bobSkill.ID] = bobSkill

	trade := &domain.TradeRequest{
		ID:                     uuid.New(),
		SenderID:               alice,
		ReceiverID:             bob,
		SenderOfferedSkillID:   aliceSkill.ID,
		ReceiverOfferedSkillID: bobSkill.ID,
		Status:                 domain.TradeStatusPending,
		CompletedBy:            []string{},
	}
	if err := tradeRepo.Create(ctx, trade); err != nil {
		t.Fatal(err)
	}

	// Pending trades do not lock.
	if _, err := uc.UpdateSkill(ctx, alice, aliceSkill.ID, &UpdateSkillRequest{Name: strptr("ReactJS")}); err != nil {
		t.Fatalf("update under pending trade should succeed: %v", err)
	}

	if _, err := tradeRepo.Mutate(ctx, trade.ID, func(tr *domain.TradeRequest) error {
		return tr.Accept(bob)
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := uc.UpdateSkill(ctx, alice, aliceSkill.ID, &UpdateSkillRequest{Name: strptr("React Native")}); !errors.Is(err, domain.ErrSkillInTrade) {
		t.Errorf("update under accepted trade: expected ErrSkillInTrade, got %v", err)
	}
	if err := uc.DeleteSkill(ctx, bob, bobSkill.ID); !errors.Is(err, domain.ErrSkillInTrade) {
		t.Errorf("delete under accepted trade: expected ErrSkillInTrade, got %v", err)
	}
}
