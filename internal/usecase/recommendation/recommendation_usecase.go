package recommendation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

// Facet weights. Contributions are additive and not normalized; an event
// matching several facets can score above 1.0.
const (
	categoryWeight = 0.4
	dayOfWeekBonus = 0.2
	timeOfDayBonus = 0.2
	locationBonus  = 0.2
	featuredBonus  = 0.1

	// Score assigned to every featured event on the fallback branch.
	fallbackScore = 0.5
)

// DefaultLimit is used when the caller does not supply a positive limit.
const DefaultLimit = 5

const (
	baseReason     = "This event might interest you"
	fallbackReason = "This is a featured event that might interest you."
)

type RecommendationUseCase struct {
	prefRepo     repository.PreferenceRepository
	eventRepo    repository.EventRepository
	clubRepo     repository.ClubRepository
	feedbackRepo repository.FeedbackRepository
	logger       *zap.Logger
}

func NewRecommendationUseCase(
	prefRepo repository.PreferenceRepository,
	eventRepo repository.EventRepository,
	clubRepo repository.ClubRepository,
	feedbackRepo repository.FeedbackRepository,
	logger *zap.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		prefRepo:     prefRepo,
		eventRepo:    eventRepo,
		clubRepo:     clubRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// GetRecommendations ranks the event catalog for a user and returns the top
// limit entries. A user without preferred categories gets the featured-events
// fallback instead of a scored ranking. An empty catalog yields an empty list,
// not an error, and an unknown userID behaves exactly like a user who has not
// set preferences yet.
func (uc *RecommendationUseCase) GetRecommendations(ctx context.Context, userID, limit int) ([]*domain.RecommendedEvent, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	prefs, err := uc.ResolvePreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve preferences: %w", err)
	}

	// Only an empty category set triggers the fallback; the other facets
	// being empty still goes through scoring.
	if len(prefs.PreferredCategories) == 0 {
		return uc.featuredFallback(ctx, userID, limit)
	}

	events, err := uc.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	recommended := make([]*domain.RecommendedEvent, 0, len(events))
	for _, event := range events {
		withCats, err := uc.eventRepo.GetWithCategories(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve categories for event %d: %w", event.ID, err)
		}

		score, matched, reason := scoreEvent(withCats, prefs)
		recommended = append(recommended, &domain.RecommendedEvent{
			Event:              *event,
			RelevanceScore:     score,
			MatchedPreferences: matched,
			SuggestedReason:    reason,
		})
	}

	// Stable sort: candidates with equal scores keep catalog order.
	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].RelevanceScore > recommended[j].RelevanceScore
	})

	if len(recommended) > limit {
		recommended = recommended[:limit]
	}

	uc.logger.Debug("scored recommendations",
		zap.Int("user_id", userID),
		zap.Int("candidates", len(events)),
		zap.Int("returned", len(recommended)),
	)
	return recommended, nil
}

func (uc *RecommendationUseCase) featuredFallback(ctx context.Context, userID, limit int) ([]*domain.RecommendedEvent, error) {
	featured, err := uc.eventRepo.GetFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load featured events: %w", err)
	}

	recommended := make([]*domain.RecommendedEvent, 0, len(featured))
	for _, event := range featured {
		recommended = append(recommended, &domain.RecommendedEvent{
			Event:              *event,
			RelevanceScore:     fallbackScore,
			MatchedPreferences: []string{"featured"},
			SuggestedReason:    fallbackReason,
		})
	}

	uc.logger.Debug("featured fallback recommendations",
		zap.Int("user_id", userID),
		zap.Int("returned", len(recommended)),
	)
	return recommended, nil
}

// scoreEvent computes the relevance score, the matched facet labels in
// evaluation order, and the human-readable reason for one candidate event.
// Pure function of its inputs.
func scoreEvent(event *domain.EventWithCategories, prefs *domain.UserPreferences) (float64, []string, string) {
	score := 0.0
	matched := []string{}

	// Category overlap: 0.4 weighted by the fraction of the event's
	// categories the user prefers. An event with no categories contributes
	// nothing here.
	if len(event.Categories) > 0 {
		preferred := make(map[int]struct{}, len(prefs.PreferredCategories))
		for _, id := range prefs.PreferredCategories {
			preferred[id] = struct{}{}
		}
		matches := 0
		for _, cat := range event.Categories {
			if _, ok := preferred[cat.ID]; ok {
				matches++
			}
		}
		if matches > 0 {
			score += categoryWeight * float64(matches) / float64(len(event.Categories))
			matched = append(matched, "categories")
		}
	}

	// Day of week, compared case-insensitively against the event's local
	// weekday name.
	if len(prefs.PreferredDaysOfWeek) > 0 {
		eventDay := event.StartTime.Weekday().String()
		for _, day := range prefs.PreferredDaysOfWeek {
			if strings.EqualFold(day, eventDay) {
				score += dayOfWeekBonus
				matched = append(matched, "day of week")
				break
			}
		}
	}

	if len(prefs.PreferredTimeOfDay) > 0 {
		bucket := timeOfDayBucket(event.StartTime.Hour())
		for _, tod := range prefs.PreferredTimeOfDay {
			if tod == bucket {
				score += timeOfDayBonus
				matched = append(matched, "time of day")
				break
			}
		}
	}

	if prefs.LocationPreference != "" &&
		strings.Contains(strings.ToLower(event.Location), strings.ToLower(prefs.LocationPreference)) {
		score += locationBonus
		matched = append(matched, "location")
	}

	if event.Featured {
		score += featuredBonus
		matched = append(matched, "featured")
	}

	reason := baseReason
	if len(matched) > 0 {
		reason += " based on your preferences for " + strings.Join(matched, ", ")
	}

	return score, matched, reason
}

// timeOfDayBucket maps an hour of day to its preference bucket.
func timeOfDayBucket(hour int) string {
	switch {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	case hour < 20:
		return "evening"
	default:
		return "night"
	}
}
