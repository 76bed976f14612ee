package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, excludeUserID uuid.UUID, limit, offset int) ([]*domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
}
