package memory

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type eventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) repository.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event.ID = r.store.eventID
	r.store.eventID++
	event.CreatedAt = now()

	stored := *event
	r.store.events[event.ID] = &stored
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	event, ok := r.store.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := make([]*domain.Event, 0, len(r.store.events))
	for _, id := range r.store.sortedEventIDs() {
		copied := *r.store.events[id]
		events = append(events, &copied)
	}
	return events, nil
}

func (r *eventRepository) GetWithCategories(ctx context.Context, id int) (*domain.EventWithCategories, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	event, ok := r.store.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	result := &domain.EventWithCategories{
		Event:      *event,
		Categories: r.store.categoriesForEvent(id),
	}
	if organizer, ok := r.store.users[event.OrganizerID]; ok {
		copied := *organizer
		result.Organizer = &copied
	}
	return result, nil
}

func (r *eventRepository) GetFeatured(ctx context.Context, limit int) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var featured []*domain.Event
	for _, id := range r.store.sortedEventIDs() {
		event := r.store.events[id]
		if !event.Featured {
			continue
		}
		copied := *event
		featured = append(featured, &copied)
		if limit > 0 && len(featured) >= limit {
			break
		}
	}
	return featured, nil
}

func (r *eventRepository) AddCategory(ctx context.Context, eventID, categoryID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[eventID]; !ok {
		return domain.ErrEventNotFound
	}
	if _, ok := r.store.categories[categoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	for _, ec := range r.store.eventCategories {
		if ec.eventID == eventID && ec.categoryID == categoryID {
			return nil
		}
	}
	r.store.eventCategories = append(r.store.eventCategories, eventCategory{
		eventID:    eventID,
		categoryID: categoryID,
	})
	return nil
}

func (r *eventRepository) CreateRsvp(ctx context.Context, rsvp *domain.EventRsvp) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[rsvp.EventID]; !ok {
		return domain.ErrEventNotFound
	}
	rsvp.CreatedAt = now()

	stored := *rsvp
	r.store.eventRsvps = append(r.store.eventRsvps, &stored)
	return nil
}

func (r *eventRepository) GetRsvpsByEventID(ctx context.Context, eventID int) ([]*domain.EventRsvp, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var rsvps []*domain.EventRsvp
	for _, rsvp := range r.store.eventRsvps {
		if rsvp.EventID == eventID {
			copied := *rsvp
			rsvps = append(rsvps, &copied)
		}
	}
	return rsvps, nil
}
