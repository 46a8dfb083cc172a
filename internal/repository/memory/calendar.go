package memory

import (
	"context"
	"sort"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type calendarRepository struct {
	store *Store
}

func NewCalendarRepository(store *Store) repository.CalendarRepository {
	return &calendarRepository{store: store}
}

func (r *calendarRepository) Add(ctx context.Context, entry *domain.UserCalendarEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[entry.EventID]; !ok {
		return domain.ErrEventNotFound
	}

	// Re-adding an event updates its notes and reminder in place.
	for _, existing := range r.store.calendarEvents {
		if existing.UserID == entry.UserID && existing.EventID == entry.EventID {
			existing.Notes = entry.Notes
			existing.ReminderTime = entry.ReminderTime
			entry.ID = existing.ID
			entry.AddedAt = existing.AddedAt
			return nil
		}
	}

	entry.ID = r.store.calendarID
	r.store.calendarID++
	entry.AddedAt = now()

	stored := *entry
	r.store.calendarEvents = append(r.store.calendarEvents, &stored)
	return nil
}

func (r *calendarRepository) Remove(ctx context.Context, userID, eventID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, entry := range r.store.calendarEvents {
		if entry.UserID == userID && entry.EventID == eventID {
			r.store.calendarEvents = append(r.store.calendarEvents[:i], r.store.calendarEvents[i+1:]...)
			return nil
		}
	}
	return domain.ErrCalendarEventNotFound
}

func (r *calendarRepository) GetUserEvents(ctx context.Context, userID int) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var events []*domain.Event
	for _, entry := range r.store.calendarEvents {
		if entry.UserID != userID {
			continue
		}
		if event, ok := r.store.events[entry.EventID]; ok {
			copied := *event
			events = append(events, &copied)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events, nil
}

func (r *calendarRepository) IsInCalendar(ctx context.Context, userID, eventID int) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, entry := range r.store.calendarEvents {
		if entry.UserID == userID && entry.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}
