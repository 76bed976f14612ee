package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/skillswap/skillswap-backend/internal/config"
	"github.com/skillswap/skillswap-backend/internal/delivery/http"
	"github.com/skillswap/skillswap-backend/internal/delivery/http/handler"
	"github.com/skillswap/skillswap-backend/internal/delivery/http/middleware"
	"github.com/skillswap/skillswap-backend/internal/infrastructure/database"
	"github.com/skillswap/skillswap-backend/internal/infrastructure/gemini"
	"github.com/skillswap/skillswap-backend/internal/infrastructure/server"
	"github.com/skillswap/skillswap-backend/internal/infrastructure/similarity"
	"github.com/skillswap/skillswap-backend/internal/repository/postgres"
	"github.com/skillswap/skillswap-backend/internal/usecase/auth"
	"github.com/skillswap/skillswap-backend/internal/usecase/match"
	"github.com/skillswap/skillswap-backend/internal/usecase/skill"
	"github.com/skillswap/skillswap-backend/internal/usecase/trade"
	"github.com/skillswap/skillswap-backend/internal/usecase/trading"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize Gemini client. Without it the app still runs; match
	// analysis reports itself unavailable instead of inventing scores.
	var geminiClient *gemini.Client
	var similarityProvider match.SimilarityProvider
	if cfg.Gemini.APIKey == "" {
		fmt.Println("Warning: GEMINI_API_KEY not set, match analysis disabled")
	} else {
		geminiClient, err = gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
		} else {
			similarityProvider = similarity.NewCachedProvider(geminiClient, redisClient, cfg.Redis.CacheTTL)
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	skillRepo := postgres.NewSkillRepository(db)
	tradeRepo := postgres.NewTradeRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	// Reclaim session rows that outlived their expiry before serving traffic.
	if n, err := authUseCase.PurgeExpiredSessions(context.Background()); err != nil {
		fmt.Printf("Warning: failed to purge expired sessions: %v\n", err)
	} else if n > 0 {
		fmt.Printf("Purged %d expired sessions\n", n)
	}

	skillUseCase := skill.NewSkillUseCase(
		skillRepo,
		tradeRepo,
	)

	matchUseCase := match.NewMatchUseCase(
		skillRepo,
		similarityProvider,
	)

	tradeUseCase := trade.NewTradeUseCase(
		tradeRepo,
		skillRepo,
	)

	tradingUseCase := trading.NewTradingUseCase(
		userRepo,
		skillRepo,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	skillHandler := handler.NewSkillHandler(skillUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	tradeHandler := handler.NewTradeHandler(tradeUseCase)
	tradingHandler := handler.NewTradingHandler(tradingUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		skillHandler,
		matchHandler,
		tradeHandler,
		tradingHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
