package skill

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

type SkillUseCase struct {
	skillRepo repository.SkillRepository
	tradeRepo repository.TradeRepository
}

func NewSkillUseCase(skillRepo repository.SkillRepository, tradeRepo repository.TradeRepository) *SkillUseCase {
	return &SkillUseCase{
		skillRepo: skillRepo,
		tradeRepo: tradeRepo,
	}
}

// AddSkillRequest creates either an offered or a required skill. Proficiency
// only applies to offered skills, learning priority only to required ones.
type AddSkillRequest struct {
	Name             string   `json:"name" binding:"required,notblank,max=100"`
	Role             string   `json:"role" binding:"required,oneof=offered required"`
	Categories       []string `json:"categories" binding:"omitempty,max=10,dive,notblank"`
	ProficiencyLevel *string  `json:"proficiency_level" binding:"omitempty,oneof=beginner intermediate expert"`
	LearningPriority *string  `json:"learning_priority" binding:"omitempty,oneof=high medium low"`
	Description      *string  `json:"description" binding:"omitempty,max=500"`
}

type UpdateSkillRequest struct {
	Name             *string   `json:"name" binding:"omitempty,notblank,max=100"`
	Categories       *[]string `json:"categories" binding:"omitempty,max=10,dive,notblank"`
	ProficiencyLevel *string   `json:"proficiency_level" binding:"omitempty,oneof=beginner intermediate expert"`
	LearningPriority *string   `json:"learning_priority" binding:"omitempty,oneof=high medium low"`
	Description      *string   `json:"description" binding:"omitempty,max=500"`
}

func (uc *SkillUseCase) AddSkill(ctx context.Context, ownerID uuid.UUID, req *AddSkillRequest) (*domain.Skill, error) {
	skill := &domain.Skill{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Role:        domain.SkillRole(req.Role),
		Categories:  req.Categories,
		Description: req.Description,
	}
	switch skill.Role {
	case domain.SkillRoleOffered:
		skill.ProficiencyLevel = req.ProficiencyLevel
	case domain.SkillRoleRequired:
		skill.LearningPriority = req.LearningPriority
	}

	if err := uc.skillRepo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

func (uc *SkillUseCase) ListOffered(ctx context.Context, ownerID uuid.UUID) ([]*domain.Skill, error) {
	return uc.skillRepo.GetByOwnerAndRole(ctx, ownerID, domain.SkillRoleOffered)
}

func (uc *SkillUseCase) ListRequired(ctx context.Context, ownerID uuid.UUID) ([]*domain.Skill, error) {
	return uc.skillRepo.GetByOwnerAndRole(ctx, ownerID, domain.SkillRoleRequired)
}

func (uc *SkillUseCase) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Skill, error) {
	return uc.skillRepo.GetByOwner(ctx, ownerID)
}

// UpdateSkill edits a skill. A skill referenced by a trade request that has
// left pending is frozen: its identity must not shift under an in-flight or
// settled trade.
func (uc *SkillUseCase) UpdateSkill(ctx context.Context, ownerID, skillID uuid.UUID, req *UpdateSkillRequest) (*domain.Skill, error) {
	skill, err := uc.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if !skill.OwnedBy(ownerID) {
		return nil, fmt.Errorf("%w: skill belongs to another user", domain.ErrNotAuthorized)
	}

	if err := uc.ensureNotLocked(ctx, skillID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Categories != nil {
		skill.Categories = *req.Categories
	}
	if req.Description != nil {
		skill.Description = req.Description
	}
	if req.ProficiencyLevel != nil && skill.Role == domain.SkillRoleOffered {
		skill.ProficiencyLevel = req.ProficiencyLevel
	}
	if req.LearningPriority != nil && skill.Role == domain.SkillRoleRequired {
		skill.LearningPriority = req.LearningPriority
	}

	if err := uc.skillRepo.Update(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

func (uc *SkillUseCase) DeleteSkill(ctx context.Context, ownerID, skillID uuid.UUID) error {
	skill, err := uc.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return err
	}
	if !skill.OwnedBy(ownerID) {
		return fmt.Errorf("%w: skill belongs to another user", domain.ErrNotAuthorized)
	}

	if err := uc.ensureNotLocked(ctx, skillID); err != nil {
		return err
	}
	return uc.skillRepo.Delete(ctx, skillID)
}

func (uc *SkillUseCase) ensureNotLocked(ctx context.Context, skillID uuid.UUID) error {
	locked, err := uc.tradeRepo.ExistsNonPendingBySkill(ctx, skillID)
	if err != nil {
		return fmt.Errorf("failed to check skill trades: %w", err)
	}
	if locked {
		return domain.ErrSkillInTrade
	}
	return nil
}
