package recommendation

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

// UpdatePreferencesRequest carries a partial preference update. Nil fields are
// left untouched; non-nil fields replace the stored value wholesale.
type UpdatePreferencesRequest struct {
	PreferredCategories *[]int    `json:"preferredCategories" binding:"omitempty"`
	PreferredDaysOfWeek *[]string `json:"preferredDaysOfWeek" binding:"omitempty,dive,weekday"`
	PreferredTimeOfDay  *[]string `json:"preferredTimeOfDay" binding:"omitempty,dive,timeofday"`
	LocationPreference  *string   `json:"locationPreference" binding:"omitempty,max=200"`
}

// ResolvePreferences returns the user's preference record, creating and
// persisting a default-empty one on first access. Idempotent: subsequent
// calls return the stored record, so the store holds exactly one record per
// user no matter how often this is called.
func (uc *RecommendationUseCase) ResolvePreferences(ctx context.Context, userID int) (*domain.UserPreferences, error) {
	prefs, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, domain.ErrPreferencesNotFound) {
		return nil, err
	}

	prefs = &domain.UserPreferences{
		UserID:              userID,
		PreferredCategories: []int{},
		PreferredDaysOfWeek: []string{},
		PreferredTimeOfDay:  []string{},
		LocationPreference:  "",
	}
	if err := uc.prefRepo.Create(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to create default preferences: %w", err)
	}
	return prefs, nil
}

// UpdatePreferences merges the supplied fields into the user's record,
// creating a default record first when none exists, and refreshes updatedAt.
func (uc *RecommendationUseCase) UpdatePreferences(ctx context.Context, userID int, req *UpdatePreferencesRequest) (*domain.UserPreferences, error) {
	prefs, err := uc.ResolvePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PreferredCategories != nil {
		prefs.PreferredCategories = *req.PreferredCategories
	}
	if req.PreferredDaysOfWeek != nil {
		prefs.PreferredDaysOfWeek = *req.PreferredDaysOfWeek
	}
	if req.PreferredTimeOfDay != nil {
		prefs.PreferredTimeOfDay = *req.PreferredTimeOfDay
	}
	if req.LocationPreference != nil {
		prefs.LocationPreference = *req.LocationPreference
	}

	if err := uc.prefRepo.Update(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return prefs, nil
}
