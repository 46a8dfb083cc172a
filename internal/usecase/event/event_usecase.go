package event

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/infrastructure/eventsource"
	"github.com/campushq/campusconnect-backend/internal/infrastructure/gemini"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

const defaultFeaturedLimit = 5

type EventUseCase struct {
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	sources      *eventsource.Aggregator
	geminiClient *gemini.GeminiClient
	logger       *zap.Logger
}

func NewEventUseCase(
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	sources *eventsource.Aggregator,
	geminiClient *gemini.GeminiClient,
	logger *zap.Logger,
) *EventUseCase {
	return &EventUseCase{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		sources:      sources,
		geminiClient: geminiClient,
		logger:       logger,
	}
}

// CreateEventRequest represents data for creating an event
type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required,max=200"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	OrganizerID int       `json:"organizerId" binding:"required,gt=0"`
	Featured    bool      `json:"featured"`
	CategoryIDs []int     `json:"categoryIds" binding:"omitempty,dive,gt=0"`
}

// RsvpRequest represents an RSVP to an event
type RsvpRequest struct {
	UserID int    `json:"userId" binding:"required,gt=0"`
	Status string `json:"status" binding:"required,oneof=attending interested declined"`
}

// LocalEvent is an external event enriched with a suggested category.
// The json key for the category matches what existing clients read.
type LocalEvent struct {
	domain.Event
	SuggestedCategory domain.Category `json:"__suggestedCategory"`
}

func (uc *EventUseCase) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return uc.eventRepo.GetAll(ctx)
}

func (uc *EventUseCase) GetEvent(ctx context.Context, id int) (*domain.EventWithCategories, error) {
	return uc.eventRepo.GetWithCategories(ctx, id)
}

func (uc *EventUseCase) FeaturedEvents(ctx context.Context, limit int) ([]*domain.Event, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return uc.eventRepo.GetFeatured(ctx, limit)
}

// CreateEvent creates an event and links it to the given categories. When no
// categories are supplied and the AI client is configured, categories are
// suggested from the description.
func (uc *EventUseCase) CreateEvent(ctx context.Context, req *CreateEventRequest) (*domain.EventWithCategories, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, domain.NewValidationError("endTime must be after startTime")
	}
	if _, err := uc.userRepo.GetByID(ctx, req.OrganizerID); err != nil {
		return nil, err
	}

	categoryIDs := req.CategoryIDs
	for _, id := range categoryIDs {
		if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	event := &domain.Event{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		OrganizerID: req.OrganizerID,
		Featured:    req.Featured,
	}
	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if len(categoryIDs) == 0 && uc.geminiClient != nil {
		categoryIDs = uc.suggestCategories(ctx, req.Description)
	}
	for _, id := range categoryIDs {
		if err := uc.eventRepo.AddCategory(ctx, event.ID, id); err != nil {
			uc.logger.Warn("failed to link event category",
				zap.Int("event_id", event.ID),
				zap.Int("category_id", id),
				zap.Error(err))
		}
	}

	return uc.eventRepo.GetWithCategories(ctx, event.ID)
}

func (uc *EventUseCase) suggestCategories(ctx context.Context, description string) []int {
	categories, err := uc.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil
	}
	options := make([]gemini.CategoryOption, 0, len(categories))
	valid := make(map[int]bool, len(categories))
	for _, c := range categories {
		options = append(options, gemini.CategoryOption{ID: c.ID, Name: c.Name})
		valid[c.ID] = true
	}

	suggested, err := uc.geminiClient.SuggestEventCategories(ctx, description, options)
	if err != nil {
		return nil
	}
	ids := make([]int, 0, len(suggested))
	for _, id := range suggested {
		if valid[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Rsvp records a user's RSVP for an event.
func (uc *EventUseCase) Rsvp(ctx context.Context, eventID int, req *RsvpRequest) (*domain.EventRsvp, error) {
	if _, err := uc.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	rsvp := &domain.EventRsvp{
		UserID:  req.UserID,
		EventID: eventID,
		Status:  req.Status,
	}
	if err := uc.eventRepo.CreateRsvp(ctx, rsvp); err != nil {
		return nil, fmt.Errorf("failed to record rsvp: %w", err)
	}
	return rsvp, nil
}

func (uc *EventUseCase) ListRsvps(ctx context.Context, eventID int) ([]*domain.EventRsvp, error) {
	if _, err := uc.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return uc.eventRepo.GetRsvpsByEventID(ctx, eventID)
}

// LocalEvents fetches events from external providers and tags each with a
// suggested category, resolved against stored categories where possible.
func (uc *EventUseCase) LocalEvents(ctx context.Context, city, state string) ([]*LocalEvent, error) {
	if uc.sources == nil {
		return []*LocalEvent{}, nil
	}
	if city == "" {
		city = "State College"
	}
	if state == "" {
		state = "PA"
	}

	events, err := uc.sources.FetchAll(ctx, city, state)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch local events: %w", err)
	}
	uc.logger.Debug("fetched local events",
		zap.String("city", city),
		zap.String("state", state),
		zap.Int("count", len(events)))

	categories, err := uc.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	enhanced := make([]*LocalEvent, 0, len(events))
	for _, ev := range events {
		name := eventsource.SuggestCategoryName(ev)
		enhanced = append(enhanced, &LocalEvent{
			Event:             *ev,
			SuggestedCategory: eventsource.ResolveCategory(name, categories),
		})
	}
	return enhanced, nil
}
