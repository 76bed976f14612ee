package trading

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

// TradingUseCase lists counterpart users with their skill sets, so the
// current user can pick someone to run match analysis against.
type TradingUseCase struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
}

func NewTradingUseCase(userRepo repository.UserRepository, skillRepo repository.SkillRepository) *TradingUseCase {
	return &TradingUseCase{
		userRepo:  userRepo,
		skillRepo: skillRepo,
	}
}

// UserForTrading is one entry in the browse list.
type UserForTrading struct {
	User           *domain.User    `json:"user"`
	OfferedSkills  []*domain.Skill `json:"offered_skills"`
	RequiredSkills []*domain.Skill `json:"required_skills"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
	TotalUsers int `json:"total_users"`
}

func (uc *TradingUseCase) ListUsers(ctx context.Context, currentUserID uuid.UUID, page, limit int) ([]*UserForTrading, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 12
	}

	users, total, err := uc.userRepo.List(ctx, currentUserID, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}

	entries := make([]*UserForTrading, 0, len(users))
	for _, user := range users {
		skills, err := uc.skillRepo.GetByOwner(ctx, user.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load skills for user %s: %w", user.ID, err)
		}
		entry := &UserForTrading{
			User:           user,
			OfferedSkills:  []*domain.Skill{},
			RequiredSkills: []*domain.Skill{},
		}
		for _, s := range skills {
			if s.IsOffered() {
				entry.OfferedSkills = append(entry.OfferedSkills, s)
			} else {
				entry.RequiredSkills = append(entry.RequiredSkills, s)
			}
		}
		entries = append(entries, entry)
	}

	totalPages := (total + limit - 1) / limit
	return entries, &Pagination{
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		TotalUsers: total,
	}, nil
}
