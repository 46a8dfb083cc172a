package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID int) (*domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	query := `
		SELECT id, user_id, preferred_categories, preferred_days_of_week,
		       preferred_time_of_day, location_preference, updated_at
		FROM user_preferences WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.ID, &prefs.UserID,
		pq.Array(&prefs.PreferredCategories),
		pq.Array(&prefs.PreferredDaysOfWeek),
		pq.Array(&prefs.PreferredTimeOfDay),
		&prefs.LocationPreference, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, err
	}
	return &prefs, nil
}

func (r *preferenceRepository) Create(ctx context.Context, prefs *domain.UserPreferences) error {
	query := `
		INSERT INTO user_preferences (
			user_id, preferred_categories, preferred_days_of_week,
			preferred_time_of_day, location_preference
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		prefs.UserID,
		pq.Array(prefs.PreferredCategories),
		pq.Array(prefs.PreferredDaysOfWeek),
		pq.Array(prefs.PreferredTimeOfDay),
		prefs.LocationPreference,
	).Scan(&prefs.ID, &prefs.UpdatedAt)
}

func (r *preferenceRepository) Update(ctx context.Context, prefs *domain.UserPreferences) error {
	query := `
		UPDATE user_preferences SET
			preferred_categories = $2,
			preferred_days_of_week = $3,
			preferred_time_of_day = $4,
			location_preference = $5,
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING id, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		prefs.UserID,
		pq.Array(prefs.PreferredCategories),
		pq.Array(prefs.PreferredDaysOfWeek),
		pq.Array(prefs.PreferredTimeOfDay),
		prefs.LocationPreference,
	).Scan(&prefs.ID, &prefs.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrPreferencesNotFound
	}
	return err
}

type feedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.AiSuggestionFeedback) error {
	query := `
		INSERT INTO ai_suggestion_feedback (
			user_id, event_id, club_id, suggestion_type, is_relevant, feedback_text
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		feedback.UserID, feedback.EventID, feedback.ClubID,
		feedback.SuggestionType, feedback.IsRelevant, feedback.FeedbackText,
	).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *feedbackRepository) GetByUserID(ctx context.Context, userID int) ([]*domain.AiSuggestionFeedback, error) {
	feedback := []*domain.AiSuggestionFeedback{}
	query := `SELECT * FROM ai_suggestion_feedback WHERE user_id = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &feedback, query, userID); err != nil {
		return nil, err
	}
	return feedback, nil
}
