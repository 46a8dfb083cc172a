package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type calendarRepository struct {
	db *sqlx.DB
}

func NewCalendarRepository(db *sqlx.DB) repository.CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) Add(ctx context.Context, entry *domain.UserCalendarEvent) error {
	query := `
		INSERT INTO user_calendar_events (user_id, event_id, notes, reminder_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, event_id) DO UPDATE SET
			notes = EXCLUDED.notes,
			reminder_time = EXCLUDED.reminder_time
		RETURNING id, added_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		entry.UserID, entry.EventID, entry.Notes, entry.ReminderTime,
	).Scan(&entry.ID, &entry.AddedAt)
}

func (r *calendarRepository) Remove(ctx context.Context, userID, eventID int) error {
	query := `DELETE FROM user_calendar_events WHERE user_id = $1 AND event_id = $2`
	result, err := r.db.ExecContext(ctx, query, userID, eventID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCalendarEventNotFound
	}
	return nil
}

func (r *calendarRepository) GetUserEvents(ctx context.Context, userID int) ([]*domain.Event, error) {
	events := []*domain.Event{}
	query := `
		SELECT e.* FROM events e
		JOIN user_calendar_events uce ON uce.event_id = e.id
		WHERE uce.user_id = $1
		ORDER BY e.start_time
	`
	if err := r.db.SelectContext(ctx, &events, query, userID); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *calendarRepository) IsInCalendar(ctx context.Context, userID, eventID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM user_calendar_events WHERE user_id = $1 AND event_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, userID, eventID); err != nil {
		return false, err
	}
	return exists, nil
}
