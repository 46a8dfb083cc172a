package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/delivery/http/handler"
	"github.com/campushq/campusconnect-backend/internal/delivery/http/middleware"
)

type Router struct {
	userHandler           *handler.UserHandler
	categoryHandler       *handler.CategoryHandler
	eventHandler          *handler.EventHandler
	clubHandler           *handler.ClubHandler
	recommendationHandler *handler.RecommendationHandler
	calendarHandler       *handler.CalendarHandler
	chatHandler           *handler.ChatHandler
	logger                *zap.Logger
}

func NewRouter(
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	eventHandler *handler.EventHandler,
	clubHandler *handler.ClubHandler,
	recommendationHandler *handler.RecommendationHandler,
	calendarHandler *handler.CalendarHandler,
	chatHandler *handler.ChatHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		userHandler:           userHandler,
		categoryHandler:       categoryHandler,
		eventHandler:          eventHandler,
		clubHandler:           clubHandler,
		recommendationHandler: recommendationHandler,
		calendarHandler:       calendarHandler,
		chatHandler:           chatHandler,
		logger:                logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(r.logger))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	api := router.Group("/api")
	{
		api.POST("/waitlist", r.userHandler.JoinWaitlist)

		users := api.Group("/users")
		{
			users.POST("", r.userHandler.CreateUser)
			users.GET("/:userId", r.userHandler.GetUser)
			users.GET("/:userId/preferences", r.recommendationHandler.GetPreferences)
			users.PUT("/:userId/preferences", r.recommendationHandler.UpdatePreferences)
			users.GET("/:userId/recommended-events", r.recommendationHandler.GetRecommendedEvents)
			users.GET("/:userId/ai-suggestions/feedback", r.recommendationHandler.GetFeedback)
			users.GET("/:userId/calendar", r.calendarHandler.ListCalendar)
			users.GET("/:userId/calendar/export/ics", r.calendarHandler.ExportCalendar)
		}

		api.POST("/ai-suggestions/feedback", r.recommendationHandler.PostFeedback)
		api.POST("/ai/suggest-categories", r.eventHandler.SuggestCategories)

		categories := api.Group("/categories")
		{
			categories.GET("", r.categoryHandler.ListCategories)
			categories.POST("", r.categoryHandler.CreateCategory)
			categories.GET("/:id", r.categoryHandler.GetCategory)
		}

		// Literal routes registered before :id so gin matches them first.
		events := api.Group("/events")
		{
			events.GET("/local-events", r.eventHandler.LocalEvents)
			events.GET("/featured", r.eventHandler.FeaturedEvents)
			events.GET("", r.eventHandler.ListEvents)
			events.POST("", r.eventHandler.CreateEvent)
			events.GET("/:id", r.eventHandler.GetEvent)
			events.POST("/:id/rsvp", r.eventHandler.Rsvp)
			events.GET("/:id/rsvps", r.eventHandler.ListRsvps)
			events.POST("/:id/calendar", r.calendarHandler.AddToCalendar)
			events.DELETE("/:id/calendar", r.calendarHandler.RemoveFromCalendar)
			events.GET("/:id/calendar/:userId", r.calendarHandler.CalendarStatus)
			events.GET("/:id/export/ics", r.calendarHandler.ExportEvent)
		}

		clubs := api.Group("/clubs")
		{
			clubs.GET("/featured", r.clubHandler.FeaturedClubs)
			clubs.GET("", r.clubHandler.ListClubs)
			clubs.POST("", r.clubHandler.CreateClub)
			clubs.GET("/:id", r.clubHandler.GetClub)
			clubs.GET("/:id/members", r.clubHandler.ListMembers)
			clubs.POST("/:id/members", r.clubHandler.JoinClub)
		}

		chat := api.Group("/chat")
		{
			chat.POST("/conversations", r.chatHandler.StartConversation)
			chat.GET("/conversations/:id/messages", r.chatHandler.GetMessages)
			chat.POST("/conversations/:id/messages", r.chatHandler.SendMessage)
		}
	}

	return router
}
