package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"github.com/skillswap/skillswap-backend/internal/usecase/trade"
)

type TradeHandler struct {
	tradeUseCase *trade.TradeUseCase
}

func NewTradeHandler(tradeUseCase *trade.TradeUseCase) *TradeHandler {
	return &TradeHandler{
		tradeUseCase: tradeUseCase,
	}
}

// CreateTrade handles POST /trade-skills
// @Summary Create trade request
// @Description Propose exchanging one of your offered skills for one of the receiver's
// @Tags trades
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body trade.CreateTradeRequest true "Exchange terms"
// @Success 201 {object} domain.TradeRequest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /trade-skills [post]
func (h *TradeHandler) CreateTrade(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req trade.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.tradeUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidExchange) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create trade request",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trade": created})
}

// GetSentTrades handles GET /trade-skills/sent
func (h *TradeHandler) GetSentTrades(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trades, err := h.tradeUseCase.ListSent(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list sent trades",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

// GetReceivedTrades handles GET /trade-skills/received
func (h *TradeHandler) GetReceivedTrades(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trades, err := h.tradeUseCase.ListReceived(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list received trades",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

// UpdateStatusRequest is the body of PATCH /trade-skills/:trade_id/status.
// "completed" records this party's completion confirmation; the trade only
// reaches completed once both parties have sent it.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected completed"`
}

// UpdateTradeStatus handles PATCH /trade-skills/:trade_id/status
// @Summary Update trade status
// @Description Accept, reject, or confirm completion of a trade request
// @Tags trades
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param trade_id path string true "Trade request ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} domain.TradeRequest
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /trade-skills/{trade_id}/status [patch]
func (h *TradeHandler) UpdateTradeStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tradeID, err := uuid.Parse(c.Param("trade_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid trade_id",
		})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	var updated *domain.TradeRequest
	switch req.Status {
	case "accepted":
		updated, err = h.tradeUseCase.Accept(c.Request.Context(), tradeID, userID)
	case "rejected":
		updated, err = h.tradeUseCase.Reject(c.Request.Context(), tradeID, userID)
	case "completed":
		updated, err = h.tradeUseCase.ConfirmCompletion(c.Request.Context(), tradeID, userID)
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTradeNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "trade request not found"})
		case errors.Is(err, domain.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update trade status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"trade": updated})
}
