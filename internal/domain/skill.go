package domain

import (
	"time"

	"github.com/google/uuid"
)

// SkillRole says which list a skill belongs to: something the owner can
// teach (offered) or something the owner wants to learn (required).
type SkillRole string

const (
	SkillRoleOffered  SkillRole = "offered"
	SkillRoleRequired SkillRole = "required"
)

// Proficiency levels for offered skills.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyExpert       = "expert"
)

// Learning priorities for required skills.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Skill struct {
	ID               uuid.UUID `json:"id" db:"id"`
	OwnerID          uuid.UUID `json:"owner_id" db:"owner_id"`
	Name             string    `json:"name" db:"name"`
	Role             SkillRole `json:"role" db:"role"`
	Categories       []string  `json:"categories" db:"categories"`
	ProficiencyLevel *string   `json:"proficiency_level,omitempty" db:"proficiency_level"`
	LearningPriority *string   `json:"learning_priority,omitempty" db:"learning_priority"`
	Description      *string   `json:"description,omitempty" db:"description"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

func (s *Skill) IsOffered() bool {
	return s.Role == SkillRoleOffered
}

func (s *Skill) OwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}
