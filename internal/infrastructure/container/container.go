package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/config"
	"github.com/campushq/campusconnect-backend/internal/delivery/http"
	"github.com/campushq/campusconnect-backend/internal/delivery/http/handler"
	"github.com/campushq/campusconnect-backend/internal/infrastructure/database"
	"github.com/campushq/campusconnect-backend/internal/infrastructure/eventsource"
	"github.com/campushq/campusconnect-backend/internal/infrastructure/gemini"
	"github.com/campushq/campusconnect-backend/internal/infrastructure/server"
	"github.com/campushq/campusconnect-backend/internal/repository"
	"github.com/campushq/campusconnect-backend/internal/repository/memory"
	"github.com/campushq/campusconnect-backend/internal/repository/postgres"
	"github.com/campushq/campusconnect-backend/internal/usecase/calendar"
	"github.com/campushq/campusconnect-backend/internal/usecase/chat"
	"github.com/campushq/campusconnect-backend/internal/usecase/club"
	"github.com/campushq/campusconnect-backend/internal/usecase/event"
	"github.com/campushq/campusconnect-backend/internal/usecase/recommendation"
	"github.com/campushq/campusconnect-backend/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
	Logger *zap.Logger
}

type repositories struct {
	users       repository.UserRepository
	waitlist    repository.WaitlistRepository
	categories  repository.CategoryRepository
	events      repository.EventRepository
	clubs       repository.ClubRepository
	preferences repository.PreferenceRepository
	feedback    repository.FeedbackRepository
	chat        repository.ChatRepository
	calendar    repository.CalendarRepository
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	var db *sqlx.DB
	var repos repositories

	switch cfg.Storage.Type {
	case "postgres":
		pgDB, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		db = pgDB
		repos = repositories{
			users:       postgres.NewUserRepository(db),
			waitlist:    postgres.NewWaitlistRepository(db),
			categories:  postgres.NewCategoryRepository(db),
			events:      postgres.NewEventRepository(db),
			clubs:       postgres.NewClubRepository(db),
			preferences: postgres.NewPreferenceRepository(db),
			feedback:    postgres.NewFeedbackRepository(db),
			chat:        postgres.NewChatRepository(db),
			calendar:    postgres.NewCalendarRepository(db),
		}
	default:
		store := memory.New()
		repos = repositories{
			users:       memory.NewUserRepository(store),
			waitlist:    memory.NewWaitlistRepository(store),
			categories:  memory.NewCategoryRepository(store),
			events:      memory.NewEventRepository(store),
			clubs:       memory.NewClubRepository(store),
			preferences: memory.NewPreferenceRepository(store),
			feedback:    memory.NewFeedbackRepository(store),
			chat:        memory.NewChatRepository(store),
			calendar:    memory.NewCalendarRepository(store),
		}
	}

	// Redis is optional; without it external event lookups skip caching.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		client, err := database.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Warn("failed to initialize redis, caching disabled", zap.Error(err))
		} else {
			redisClient = client
		}
	}

	// Gemini is optional; without it AI features degrade to canned replies.
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("failed to initialize gemini client", zap.Error(err))
		} else {
			geminiClient = client
		}
	}

	sources := eventsource.NewAggregator(
		eventsource.NewSeatGeekClient(cfg.EventSources.SeatGeekClientID),
		eventsource.NewTicketmasterClient(cfg.EventSources.TicketmasterAPIKey),
		redisClient,
		cfg.EventSources.CacheTTL,
		logger,
	)

	// Initialize use cases
	userUseCase := user.NewUserUseCase(repos.users, repos.waitlist)

	eventUseCase := event.NewEventUseCase(
		repos.events,
		repos.categories,
		repos.users,
		sources,
		geminiClient,
		logger,
	)

	clubUseCase := club.NewClubUseCase(
		repos.clubs,
		repos.categories,
		repos.users,
		logger,
	)

	recommendationUseCase := recommendation.NewRecommendationUseCase(
		repos.preferences,
		repos.events,
		repos.clubs,
		repos.feedback,
		logger,
	)

	calendarUseCase := calendar.NewCalendarUseCase(
		repos.calendar,
		repos.events,
		repos.users,
	)

	chatUseCase := chat.NewChatUseCase(
		repos.chat,
		repos.events,
		repos.clubs,
		repos.categories,
		geminiClient,
		logger,
	)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userUseCase)
	categoryHandler := handler.NewCategoryHandler(eventUseCase)
	eventHandler := handler.NewEventHandler(eventUseCase)
	clubHandler := handler.NewClubHandler(clubUseCase)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUseCase)
	calendarHandler := handler.NewCalendarHandler(calendarUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)

	// Initialize router
	router := http.NewRouter(
		userHandler,
		categoryHandler,
		eventHandler,
		clubHandler,
		recommendationHandler,
		calendarHandler,
		chatHandler,
		logger,
	)

	ginRouter := router.Setup()

	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
		Logger: logger,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
