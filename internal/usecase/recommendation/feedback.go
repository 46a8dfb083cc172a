package recommendation

import (
	"context"
	"fmt"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

// FeedbackRequest is a user's reaction to a single recommendation. One of
// EventID/ClubID identifies the suggestion context.
type FeedbackRequest struct {
	UserID         int     `json:"userId" binding:"required"`
	EventID        *int    `json:"eventId"`
	ClubID         *int    `json:"clubId"`
	SuggestionType string  `json:"suggestionType" binding:"required"`
	IsRelevant     *bool   `json:"isRelevant"`
	FeedbackText   *string `json:"feedbackText"`
}

// RecordFeedback validates and appends a feedback record. No deduplication:
// each submission becomes its own record with a fresh id. The stored record is
// always returned.
func (uc *RecommendationUseCase) RecordFeedback(ctx context.Context, req *FeedbackRequest) (*domain.AiSuggestionFeedback, error) {
	if req.UserID <= 0 {
		return nil, domain.NewValidationError("userId is required")
	}
	if req.SuggestionType == "" {
		return nil, domain.NewValidationError("suggestionType is required")
	}

	// Feedback attached to a concrete event or club must reference one that
	// exists; this surfaces as a not-found error before anything is written.
	if req.EventID != nil {
		if _, err := uc.eventRepo.GetByID(ctx, *req.EventID); err != nil {
			return nil, err
		}
	}
	if req.ClubID != nil {
		if _, err := uc.clubRepo.GetByID(ctx, *req.ClubID); err != nil {
			return nil, err
		}
	}

	feedback := &domain.AiSuggestionFeedback{
		UserID:         req.UserID,
		EventID:        req.EventID,
		ClubID:         req.ClubID,
		SuggestionType: req.SuggestionType,
		IsRelevant:     req.IsRelevant,
		FeedbackText:   req.FeedbackText,
	}
	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}
	return feedback, nil
}

// FeedbackForUser returns all of a user's feedback records in storage order.
// The scorer does not read these back; they are collected for future tuning.
func (uc *RecommendationUseCase) FeedbackForUser(ctx context.Context, userID int) ([]*domain.AiSuggestionFeedback, error) {
	records, err := uc.feedbackRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	return records, nil
}
