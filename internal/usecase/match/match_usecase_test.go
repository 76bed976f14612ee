package match

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
)

// scoreTable maps "nameA|nameB" to a score; unknown pairs score 0.
type fakeProvider struct {
	scores map[string]float64
	err    error
	calls  int
}

func (f *fakeProvider) ScorePairs(_ context.Context, pairs []domain.SkillPair) ([]domain.SimilarityScore, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.SimilarityScore, len(pairs))
	for i, p := range pairs {
		score := f.scores[p.NameA+"|"+p.NameB]
		out[i] = domain.SimilarityScore{
			Score:          score,
			Interpretation: fmt.Sprintf("%.0f%% related", score*100),
		}
	}
	return out, nil
}

func offered(names ...string) []*domain.Skill {
	return skills(domain.SkillRoleOffered, names...)
}

func required(names ...string) []*domain.Skill {
	return skills(domain.SkillRoleRequired, names...)
}

func skills(role domain.SkillRole, names ...string) []*domain.Skill {
	out := make([]*domain.Skill, len(names))
	ownerID := uuid.New()
	for i, n := range names {
		out[i] = &domain.Skill{ID: uuid.New(), OwnerID: ownerID, Name: n, Role: role}
	}
	return out
}

func TestRankPairsBothDirections(t *testing.T) {
	provider := &fakeProvider{scores: map[string]float64{
		"React|React":   1.0,
		"Docker|Docker": 1.0,
	}}
	uc := NewMatchUseCase(nil, provider)

	got, err := uc.Rank(context.Background(),
		offered("React"), required("Docker"),
		offered("Docker"), required("React"),
	)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}

	// Equal scores keep input order: teach before learn.
	if got[0].Direction != domain.MatchDirectionTeach || got[0].MySkill.Name != "React" {
		t.Errorf("first candidate should be the teach pairing, got %s %s", got[0].Direction, got[0].MySkill.Name)
	}
	if got[1].Direction != domain.MatchDirectionLearn || got[1].MySkill.Name != "Docker" {
		t.Errorf("second candidate should be the learn pairing, got %s %s", got[1].Direction, got[1].MySkill.Name)
	}
	if provider.calls != 1 {
		t.Errorf("expected a single batch call, got %d", provider.calls)
	}
}

func TestRankThreshold(t *testing.T) {
	provider := &fakeProvider{scores: map[string]float64{
		"Go|Rust":     0.62,
		"Go|Painting": 0.05,
		"Go|Elixir":   0.3,
	}}
	uc := NewMatchUseCase(nil, provider)

	got, err := uc.Rank(context.Background(),
		offered("Go"), nil,
		nil, required("Rust", "Painting", "Elixir"),
	)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	for _, c := range got {
		if c.Score < MinViableScore {
			t.Errorf("candidate below threshold leaked through: %s -> %s (%.2f)", c.MySkill.Name, c.TheirSkill.Name, c.Score)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates (0.62 and the boundary 0.3), got %d", len(got))
	}
	if got[0].TheirSkill.Name != "Rust" || got[1].TheirSkill.Name != "Elixir" {
		t.Errorf("unexpected order: %s, %s", got[0].TheirSkill.Name, got[1].TheirSkill.Name)
	}
}

func TestRankDeterministic(t *testing.T) {
	provider := &fakeProvider{scores: map[string]float64{
		"Go|Rust":       0.8,
		"Go|Zig":        0.8,
		"Piano|Guitar":  0.8,
		"Spanish|Latin": 0.45,
	}}
	uc := NewMatchUseCase(nil, provider)

	run := func() []string {
		got, err := uc.Rank(context.Background(),
			offered("Go", "Piano"), required("Spanish"),
			offered("Latin"), required("Rust", "Zig", "Guitar"),
		)
		if err != nil {
			t.Fatalf("rank failed: %v", err)
		}
		out := make([]string, len(got))
		for i, c := range got {
			out[i] = c.MySkill.Name + "->" + c.TheirSkill.Name
		}
		return out
	}

	first := run()
	for i := 0; i < 5; i++ {
		if next := run(); !reflect.DeepEqual(first, next) {
			t.Fatalf("ordering not deterministic: %v vs %v", first, next)
		}
	}
	if want := []string{"Go->Rust", "Go->Zig", "Piano->Guitar", "Spanish->Latin"}; !reflect.DeepEqual(first, want) {
		t.Fatalf("expected %v, got %v", want, first)
	}
}

func TestRankNothingToCompare(t *testing.T) {
	provider := &fakeProvider{}
	uc := NewMatchUseCase(nil, provider)

	cases := []struct {
		name                                                   string
		mineOffered, mineRequired, theirsOffered, theirsRequired []*domain.Skill
	}{
		{"all empty", nil, nil, nil, nil},
		{"one side only offers", offered("Go"), nil, offered("Rust"), nil},
		{"one side only requires", nil, required("Go"), nil, required("Rust")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Rank(context.Background(), tc.mineOffered, tc.mineRequired, tc.theirsOffered, tc.theirsRequired)
			if !errors.Is(err, domain.ErrNoSkillsToCompare) {
				t.Fatalf("expected ErrNoSkillsToCompare, got %v", err)
			}
		})
	}
	if provider.calls != 0 {
		t.Errorf("provider should not be called when there is nothing to compare, got %d calls", provider.calls)
	}
}

func TestRankProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("model overloaded")}
	uc := NewMatchUseCase(nil, provider)

	got, err := uc.Rank(context.Background(), offered("Go"), nil, nil, required("Rust"))
	if !errors.Is(err, domain.ErrMatchingUnavailable) {
		t.Fatalf("expected ErrMatchingUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("provider failure detail lost: %v", err)
	}
	if got != nil {
		t.Errorf("no partial results allowed on failure, got %v", got)
	}
}

func TestRankProviderLengthMismatch(t *testing.T) {
	uc := NewMatchUseCase(nil, truncatingProvider{})
	_, err := uc.Rank(context.Background(), offered("Go", "Piano"), nil, nil, required("Rust"))
	if !errors.Is(err, domain.ErrMatchingUnavailable) {
		t.Fatalf("expected ErrMatchingUnavailable on truncated response, got %v", err)
	}
}

type truncatingProvider struct{}

func (truncatingProvider) ScorePairs(_ context.Context, pairs []domain.SkillPair) ([]domain.SimilarityScore, error) {
	return make([]domain.SimilarityScore, len(pairs)-1), nil
}

func TestFindMatchesSelf(t *testing.T) {
	uc := NewMatchUseCase(nil, &fakeProvider{})
	id := uuid.New()
	if _, err := uc.FindMatches(context.Background(), id, id); !errors.Is(err, domain.ErrCannotMatchSelf) {
		t.Fatalf("expected ErrCannotMatchSelf, got %v", err)
	}
}

func TestRankNoProvider(t *testing.T) {
	uc := NewMatchUseCase(nil, nil)
	_, err := uc.Rank(context.Background(), offered("Go"), nil, nil, required("Rust"))
	if !errors.Is(err, domain.ErrMatchingUnavailable) {
		t.Fatalf("expected ErrMatchingUnavailable without provider, got %v", err)
	}
}
