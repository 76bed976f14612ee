package match

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

// MinViableScore is the minimum similarity below which a pair is considered
// noise rather than a real exchange opportunity.
const MinViableScore = 0.3

// SimilarityProvider scores skill-name pairs in a single batch call. Results
// must come back in input order, one per pair. The provider may be remote and
// may fail; the matcher never uses partial results.
type SimilarityProvider interface {
	ScorePairs(ctx context.Context, pairs []domain.SkillPair) ([]domain.SimilarityScore, error)
}

type MatchUseCase struct {
	skillRepo repository.SkillRepository
	provider  SimilarityProvider
}

func NewMatchUseCase(skillRepo repository.SkillRepository, provider SimilarityProvider) *MatchUseCase {
	return &MatchUseCase{
		skillRepo: skillRepo,
		provider:  provider,
	}
}

// FindMatches loads both users' skills and ranks the viable exchange
// opportunities between them.
func (uc *MatchUseCase) FindMatches(ctx context.Context, currentUserID, otherUserID uuid.UUID) ([]*domain.MatchCandidate, error) {
	if currentUserID == otherUserID {
		return nil, domain.ErrCannotMatchSelf
	}

	mineOffered, err := uc.skillRepo.GetByOwnerAndRole(ctx, currentUserID, domain.SkillRoleOffered)
	if err != nil {
		return nil, fmt.Errorf("failed to load offered skills: %w", err)
	}
	mineRequired, err := uc.skillRepo.GetByOwnerAndRole(ctx, currentUserID, domain.SkillRoleRequired)
	if err != nil {
		return nil, fmt.Errorf("failed to load required skills: %w", err)
	}
	theirsOffered, err := uc.skillRepo.GetByOwnerAndRole(ctx, otherUserID, domain.SkillRoleOffered)
	if err != nil {
		return nil, fmt.Errorf("failed to load counterpart offered skills: %w", err)
	}
	theirsRequired, err := uc.skillRepo.GetByOwnerAndRole(ctx, otherUserID, domain.SkillRoleRequired)
	if err != nil {
		return nil, fmt.Errorf("failed to load counterpart required skills: %w", err)
	}

	return uc.Rank(ctx, mineOffered, mineRequired, theirsOffered, theirsRequired)
}

// Rank produces all viable exchange candidates between the two skill sets,
// sorted by score descending. Ties keep input order: teach-direction pairs
// before learn-direction pairs, original iteration order inside each, so the
// result is deterministic for identical inputs.
func (uc *MatchUseCase) Rank(
	ctx context.Context,
	mineOffered, mineRequired, theirsOffered, theirsRequired []*domain.Skill,
) ([]*domain.MatchCandidate, error) {
	type pairing struct {
		mySkill    *domain.Skill
		theirSkill *domain.Skill
		direction  domain.MatchDirection
	}

	var pairings []pairing
	var pairs []domain.SkillPair
	for _, m := range mineOffered {
		for _, t := range theirsRequired {
			pairings = append(pairings, pairing{m, t, domain.MatchDirectionTeach})
			pairs = append(pairs, domain.SkillPair{NameA: m.Name, NameB: t.Name})
		}
	}
	for _, m := range mineRequired {
		for _, t := range theirsOffered {
			pairings = append(pairings, pairing{m, t, domain.MatchDirectionLearn})
			pairs = append(pairs, domain.SkillPair{NameA: m.Name, NameB: t.Name})
		}
	}

	// Nothing to compare in either direction is distinct from "compared and
	// found nothing": the caller needs to tell the two apart.
	if len(pairs) == 0 {
		return nil, domain.ErrNoSkillsToCompare
	}

	if uc.provider == nil {
		return nil, fmt.Errorf("%w: no similarity provider configured", domain.ErrMatchingUnavailable)
	}

	scores, err := uc.provider.ScorePairs(ctx, pairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMatchingUnavailable, err)
	}
	if len(scores) != len(pairs) {
		return nil, fmt.Errorf("%w: provider returned %d scores for %d pairs", domain.ErrMatchingUnavailable, len(scores), len(pairs))
	}

	candidates := []*domain.MatchCandidate{}
	for i, score := range scores {
		if score.Score < MinViableScore {
			continue
		}
		candidates = append(candidates, &domain.MatchCandidate{
			MySkill:        pairings[i].mySkill,
			TheirSkill:     pairings[i].theirSkill,
			Score:          score.Score,
			Interpretation: score.Interpretation,
			Direction:      pairings[i].direction,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates, nil
}
