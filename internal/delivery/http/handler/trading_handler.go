package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillswap/skillswap-backend/internal/usecase/trading"
)

type TradingHandler struct {
	tradingUseCase *trading.TradingUseCase
}

func NewTradingHandler(tradingUseCase *trading.TradingUseCase) *TradingHandler {
	return &TradingHandler{
		tradingUseCase: tradingUseCase,
	}
}

// GetTradingUsers handles GET /trading/users
// @Summary List users available for trading
// @Description Paginated list of other users together with their offered and required skills
// @Tags trading
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Router /trading/users [get]
func (h *TradingHandler) GetTradingUsers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	users, pagination, err := h.tradingUseCase.ListUsers(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list trading users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination,
	})
}
