package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (
			name, description, location, start_time, end_time,
			organizer_id, featured, external_id, external_url, source
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		event.Name, event.Description, event.Location,
		event.StartTime, event.EndTime, event.OrganizerID, event.Featured,
		event.ExternalID, event.ExternalURL, event.Source,
	).Scan(&event.ID, &event.CreatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE id = $1`
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	events := []*domain.Event{}
	query := `SELECT * FROM events ORDER BY id`
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetWithCategories(ctx context.Context, id int) (*domain.EventWithCategories, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categories := []domain.Category{}
	query := `
		SELECT c.* FROM categories c
		JOIN event_categories ec ON ec.category_id = c.id
		WHERE ec.event_id = $1
		ORDER BY c.id
	`
	if err := r.db.SelectContext(ctx, &categories, query, id); err != nil {
		return nil, err
	}

	result := &domain.EventWithCategories{
		Event:      *event,
		Categories: categories,
	}

	var organizer domain.User
	err = r.db.GetContext(ctx, &organizer, `SELECT * FROM users WHERE id = $1`, event.OrganizerID)
	if err == nil {
		result.Organizer = &organizer
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return result, nil
}

func (r *eventRepository) GetFeatured(ctx context.Context, limit int) ([]*domain.Event, error) {
	events := []*domain.Event{}
	query := `SELECT * FROM events WHERE featured = true ORDER BY id LIMIT $1`
	if err := r.db.SelectContext(ctx, &events, query, limit); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) AddCategory(ctx context.Context, eventID, categoryID int) error {
	query := `
		INSERT INTO event_categories (event_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, eventID, categoryID)
	return err
}

func (r *eventRepository) CreateRsvp(ctx context.Context, rsvp *domain.EventRsvp) error {
	query := `
		INSERT INTO event_rsvps (user_id, event_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, event_id) DO UPDATE SET status = EXCLUDED.status
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, rsvp.UserID, rsvp.EventID, rsvp.Status).Scan(&rsvp.CreatedAt)
}

func (r *eventRepository) GetRsvpsByEventID(ctx context.Context, eventID int) ([]*domain.EventRsvp, error) {
	rsvps := []*domain.EventRsvp{}
	query := `SELECT * FROM event_rsvps WHERE event_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &rsvps, query, eventID); err != nil {
		return nil, err
	}
	return rsvps, nil
}
