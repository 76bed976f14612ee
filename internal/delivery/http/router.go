package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/skillswap/skillswap-backend/internal/delivery/http/handler"
	"github.com/skillswap/skillswap-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler    *handler.AuthHandler
	skillHandler   *handler.SkillHandler
	matchHandler   *handler.MatchHandler
	tradeHandler   *handler.TradeHandler
	tradingHandler *handler.TradingHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	skillHandler *handler.SkillHandler,
	matchHandler *handler.MatchHandler,
	tradeHandler *handler.TradeHandler,
	tradingHandler *handler.TradingHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		skillHandler:   skillHandler,
		matchHandler:   matchHandler,
		tradeHandler:   tradeHandler,
		tradingHandler: tradingHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notblank", validators.NotBlank)
	}

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.PUT("/me", r.authMiddleware.RequireAuth(), r.authHandler.UpdateMe)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Skill routes
			skills := protected.Group("/skills")
			{
				skills.POST("", r.skillHandler.AddSkill)
				skills.GET("/offered", r.skillHandler.GetMyOfferedSkills)
				skills.GET("/required", r.skillHandler.GetMyRequiredSkills)
				skills.PUT("/:skill_id", r.skillHandler.UpdateSkill)
				skills.DELETE("/:skill_id", r.skillHandler.DeleteSkill)
			}

			// Trading browse routes
			trading := protected.Group("/trading")
			{
				trading.GET("/users", r.tradingHandler.GetTradingUsers)
			}

			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("/:user_id", r.matchHandler.FindMatches)
			}

			// Trade request routes
			trades := protected.Group("/trade-skills")
			{
				trades.POST("", r.tradeHandler.CreateTrade)
				trades.GET("/sent", r.tradeHandler.GetSentTrades)
				trades.GET("/received", r.tradeHandler.GetReceivedTrades)
				trades.PATCH("/:trade_id/status", r.tradeHandler.UpdateTradeStatus)
			}
		}
	}

	return router
}
