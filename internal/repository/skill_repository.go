package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Skill, error)
	GetByOwnerAndRole(ctx context.Context, ownerID uuid.UUID, role domain.SkillRole) ([]*domain.Skill, error)
	Update(ctx context.Context, skill *domain.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}
