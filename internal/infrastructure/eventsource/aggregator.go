package eventsource

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

// virtualCategoryIDBase keeps display-only category ids out of the range
// the store assigns to persisted categories.
const virtualCategoryIDBase = 1000

// Aggregator merges events from the configured external providers and caches
// merged results in Redis. A nil redis client disables caching.
type Aggregator struct {
	seatGeek     *SeatGeekClient
	ticketmaster *TicketmasterClient
	redisClient  *redis.Client
	cacheTTL     time.Duration
	logger       *zap.Logger
}

func NewAggregator(
	seatGeek *SeatGeekClient,
	ticketmaster *TicketmasterClient,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Aggregator {
	return &Aggregator{
		seatGeek:     seatGeek,
		ticketmaster: ticketmaster,
		redisClient:  redisClient,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// FetchAll returns the combined events from all providers. Provider failures
// are logged and skipped so one source being down does not empty the whole
// listing.
func (a *Aggregator) FetchAll(ctx context.Context, city, state string) ([]*domain.Event, error) {
	cacheKey := fmt.Sprintf("local-events:%s:%s", strings.ToLower(city), strings.ToLower(state))

	if cached, ok := a.readCache(ctx, cacheKey); ok {
		return cached, nil
	}

	type fetchResult struct {
		events []*domain.Event
		err    error
		source string
	}

	results := make(chan fetchResult, 2)
	go func() {
		events, err := a.seatGeek.FetchEvents(ctx, city, state)
		results <- fetchResult{events: events, err: err, source: "seatgeek"}
	}()
	go func() {
		events, err := a.ticketmaster.FetchEvents(ctx, city, state)
		results <- fetchResult{events: events, err: err, source: "ticketmaster"}
	}()

	var seatGeekEvents, ticketmasterEvents []*domain.Event
	for i := 0; i < 2; i++ {
		res := <-results
		if res.err != nil {
			a.logger.Warn("event source fetch failed",
				zap.String("source", res.source),
				zap.Error(res.err))
			continue
		}
		if res.source == "seatgeek" {
			seatGeekEvents = res.events
		} else {
			ticketmasterEvents = res.events
		}
	}

	merged := make([]*domain.Event, 0, len(seatGeekEvents)+len(ticketmasterEvents))
	merged = append(merged, seatGeekEvents...)
	merged = append(merged, ticketmasterEvents...)

	a.writeCache(ctx, cacheKey, merged)
	return merged, nil
}

func (a *Aggregator) readCache(ctx context.Context, key string) ([]*domain.Event, bool) {
	if a.redisClient == nil {
		return nil, false
	}
	data, err := a.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			a.logger.Warn("event cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var events []*domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false
	}
	return events, true
}

func (a *Aggregator) writeCache(ctx context.Context, key string, events []*domain.Event) {
	if a.redisClient == nil {
		return
	}
	data, err := json.Marshal(events)
	if err != nil {
		return
	}
	if err := a.redisClient.Set(ctx, key, data, a.cacheTTL).Err(); err != nil {
		a.logger.Warn("event cache write failed", zap.Error(err))
	}
}

// SuggestCategoryName picks a category for an external event by keyword
// matching on its name and description.
func SuggestCategoryName(event *domain.Event) string {
	title := strings.ToLower(event.Name)
	description := strings.ToLower(event.Description)

	switch {
	case strings.Contains(title, "concert"),
		strings.Contains(title, "music"),
		strings.Contains(description, "band"),
		strings.Contains(description, "music"):
		return "Music"
	case strings.Contains(title, "game"),
		strings.Contains(title, "vs"),
		strings.Contains(title, "match"),
		strings.Contains(description, "team"),
		strings.Contains(description, "sport"):
		return "Sports"
	case strings.Contains(title, "lecture"),
		strings.Contains(title, "seminar"),
		strings.Contains(title, "workshop"),
		strings.Contains(description, "learn"),
		strings.Contains(description, "education"):
		return "Academic"
	case strings.Contains(title, "party"),
		strings.Contains(title, "social"),
		strings.Contains(title, "mixer"),
		strings.Contains(description, "social"),
		strings.Contains(description, "networking"):
		return "Social"
	case strings.Contains(title, "volunteer"),
		strings.Contains(title, "charity"),
		strings.Contains(title, "drive"),
		strings.Contains(description, "volunteer"),
		strings.Contains(description, "community"):
		return "Community Service"
	case strings.Contains(title, "theater"),
		strings.Contains(title, "show"),
		strings.Contains(title, "performance"),
		strings.Contains(description, "performance"),
		strings.Contains(description, "art"):
		return "Arts & Culture"
	default:
		return "Other"
	}
}

var virtualCategoryColors = map[string]string{
	"Music":             "#2196F3",
	"Sports":            "#4CAF50",
	"Academic":          "#FF9800",
	"Social":            "#9C27B0",
	"Community Service": "#795548",
	"Arts & Culture":    "#E91E63",
	"Other":             "#607D8B",
}

// ResolveCategory maps a suggested category name to an existing stored
// category, or builds a display-only virtual one when no match exists.
func ResolveCategory(name string, existing []*domain.Category) domain.Category {
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return *c
		}
	}

	color, ok := virtualCategoryColors[name]
	if !ok {
		color = "#607D8B"
	}
	return domain.Category{
		ID:        virtualCategoryIDBase + len(existing) + 1,
		Name:      name,
		Color:     color,
		IsDefault: false,
		CreatedBy: nil,
	}
}
