package repository

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

// PreferenceRepository stores one UserPreferences record per user.
// GetByUserID returns domain.ErrPreferencesNotFound when no record exists;
// the resolver in the recommendation usecase turns that into a default record.
type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.UserPreferences, error)
	Create(ctx context.Context, prefs *domain.UserPreferences) error
	Update(ctx context.Context, prefs *domain.UserPreferences) error
}

// FeedbackRepository is append-only; Create assigns a fresh id and records
// are returned in storage order.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.AiSuggestionFeedback) error
	GetByUserID(ctx context.Context, userID int) ([]*domain.AiSuggestionFeedback, error)
}
