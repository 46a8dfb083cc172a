package repository

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

// EventRepository is the events/categories access contract the recommendation
// engine reads through. GetAll returns the full catalog in no guaranteed order;
// the scorer treats iteration order as the tie-break, so implementations must
// return a reproducible order for a given store state.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int) (*domain.Event, error)
	GetAll(ctx context.Context) ([]*domain.Event, error)
	GetWithCategories(ctx context.Context, id int) (*domain.EventWithCategories, error)
	GetFeatured(ctx context.Context, limit int) ([]*domain.Event, error)
	AddCategory(ctx context.Context, eventID, categoryID int) error
	CreateRsvp(ctx context.Context, rsvp *domain.EventRsvp) error
	GetRsvpsByEventID(ctx context.Context, eventID int) ([]*domain.EventRsvp, error)
}

type CalendarRepository interface {
	Add(ctx context.Context, entry *domain.UserCalendarEvent) error
	Remove(ctx context.Context, userID, eventID int) error
	GetUserEvents(ctx context.Context, userID int) ([]*domain.Event, error)
	IsInCalendar(ctx context.Context, userID, eventID int) (bool, error)
}
