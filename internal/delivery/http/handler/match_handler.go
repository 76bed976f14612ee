package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// FindMatches handles GET /matches/:user_id
// @Summary Analyze skill matches against another user
// @Description Rank viable exchange opportunities between the current user and a counterpart
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "Counterpart user ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /matches/{user_id} [get]
func (h *MatchHandler) FindMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	otherUserID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user_id",
		})
		return
	}

	candidates, err := h.matchUseCase.FindMatches(c.Request.Context(), userID, otherUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotMatchSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot match against yourself"})
		case errors.Is(err, domain.ErrNoSkillsToCompare):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "no skills available to compare"})
		case errors.Is(err, domain.ErrMatchingUnavailable):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "skill matching is temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to analyze matches"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": candidates})
}
