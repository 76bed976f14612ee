package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) repository.SkillRepository {
	return &skillRepository{db: db}
}

const skillColumns = `
	id, owner_id, name, role, categories, proficiency_level, learning_priority,
	description, created_at, updated_at
`

func scanSkill(row sqlx.ColScanner) (*domain.Skill, error) {
	var skill domain.Skill
	err := row.Scan(
		&skill.ID, &skill.OwnerID, &skill.Name, &skill.Role, pq.Array(&skill.Categories),
		&skill.ProficiencyLevel, &skill.LearningPriority, &skill.Description,
		&skill.CreatedAt, &skill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
		INSERT INTO skills (id, owner_id, name, role, categories, proficiency_level, learning_priority, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		skill.ID, skill.OwnerID, skill.Name, skill.Role, pq.Array(skill.Categories),
		skill.ProficiencyLevel, skill.LearningPriority, skill.Description,
	).Scan(&skill.CreatedAt, &skill.UpdatedAt)
}

func (r *skillRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	skill, err := scanSkill(r.db.QueryRowxContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (r *skillRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE owner_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, ownerID)
}

func (r *skillRepository) GetByOwnerAndRole(ctx context.Context, ownerID uuid.UUID, role domain.SkillRole) ([]*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE owner_id = $1 AND role = $2 ORDER BY created_at ASC`
	return r.list(ctx, query, ownerID, role)
}

func (r *skillRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Skill, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []*domain.Skill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	query := `
		UPDATE skills
		SET name = $1, categories = $2, proficiency_level = $3, learning_priority = $4,
		    description = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		skill.Name, pq.Array(skill.Categories), skill.ProficiencyLevel,
		skill.LearningPriority, skill.Description, skill.ID,
	).Scan(&skill.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrSkillNotFound
	}
	return err
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}
