package domain

import "time"

// AiSuggestionFeedback is a user's explicit relevant/not-relevant reaction to a
// recommendation. Records are append-only: resubmitting feedback for the same
// event creates a new record rather than overwriting the old one.
type AiSuggestionFeedback struct {
	ID             int       `json:"id" db:"id"`
	UserID         int       `json:"userId" db:"user_id"`
	EventID        *int      `json:"eventId" db:"event_id"`
	ClubID         *int      `json:"clubId" db:"club_id"`
	SuggestionType string    `json:"suggestionType" db:"suggestion_type"`
	IsRelevant     *bool     `json:"isRelevant" db:"is_relevant"`
	FeedbackText   *string   `json:"feedbackText" db:"feedback_text"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
