package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/usecase/skill"
)

type SkillHandler struct {
	skillUseCase *skill.SkillUseCase
}

func NewSkillHandler(skillUseCase *skill.SkillUseCase) *SkillHandler {
	return &SkillHandler{
		skillUseCase: skillUseCase,
	}
}

// AddSkill handles POST /skills
func (h *SkillHandler) AddSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req skill.AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.skillUseCase.AddSkill(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to add skill",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetMyOfferedSkills handles GET /skills/offered
func (h *SkillHandler) GetMyOfferedSkills(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skills, err := h.skillUseCase.ListOffered(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list skills",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// GetMyRequiredSkills handles GET /skills/required
func (h *SkillHandler) GetMyRequiredSkills(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skills, err := h.skillUseCase.ListRequired(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list skills",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// UpdateSkill handles PUT /skills/:skill_id
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skillID, err := uuid.Parse(c.Param("skill_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid skill_id",
		})
		return
	}

	var req skill.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.skillUseCase.UpdateSkill(c.Request.Context(), userID, skillID, &req)
	if err != nil {
		h.writeSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteSkill handles DELETE /skills/:skill_id
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skillID, err := uuid.Parse(c.Param("skill_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid skill_id",
		})
		return
	}

	if err := h.skillUseCase.DeleteSkill(c.Request.Context(), userID, skillID); err != nil {
		h.writeSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "skill deleted",
	})
}

func (h *SkillHandler) writeSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSkillNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "skill not found"})
	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "skill belongs to another user"})
	case errors.Is(err, domain.ErrSkillInTrade):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "skill is referenced by an active trade"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "skill operation failed"})
	}
}
