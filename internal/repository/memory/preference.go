package memory

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type preferenceRepository struct {
	store *Store
}

func NewPreferenceRepository(store *Store) repository.PreferenceRepository {
	return &preferenceRepository{store: store}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID int) (*domain.UserPreferences, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	prefs, ok := r.store.preferences[userID]
	if !ok {
		return nil, domain.ErrPreferencesNotFound
	}
	copied := *prefs
	return &copied, nil
}

func (r *preferenceRepository) Create(ctx context.Context, prefs *domain.UserPreferences) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prefs.ID = r.store.preferenceID
	r.store.preferenceID++
	prefs.UpdatedAt = now()

	stored := *prefs
	r.store.preferences[prefs.UserID] = &stored
	return nil
}

func (r *preferenceRepository) Update(ctx context.Context, prefs *domain.UserPreferences) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.preferences[prefs.UserID]
	if !ok {
		return domain.ErrPreferencesNotFound
	}
	prefs.ID = existing.ID
	prefs.UpdatedAt = now()

	stored := *prefs
	r.store.preferences[prefs.UserID] = &stored
	return nil
}

type feedbackRepository struct {
	store *Store
}

func NewFeedbackRepository(store *Store) repository.FeedbackRepository {
	return &feedbackRepository{store: store}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.AiSuggestionFeedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	feedback.ID = r.store.feedbackID
	r.store.feedbackID++
	feedback.CreatedAt = now()

	stored := *feedback
	r.store.feedback = append(r.store.feedback, &stored)
	return nil
}

func (r *feedbackRepository) GetByUserID(ctx context.Context, userID int) ([]*domain.AiSuggestionFeedback, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []*domain.AiSuggestionFeedback
	for _, fb := range r.store.feedback {
		if fb.UserID == userID {
			copied := *fb
			records = append(records, &copied)
		}
	}
	return records, nil
}
