package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type CalendarUseCase struct {
	calendarRepo repository.CalendarRepository
	eventRepo    repository.EventRepository
	userRepo     repository.UserRepository
}

func NewCalendarUseCase(
	calendarRepo repository.CalendarRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
) *CalendarUseCase {
	return &CalendarUseCase{
		calendarRepo: calendarRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
	}
}

// AddRequest represents adding an event to a user's calendar
type AddRequest struct {
	UserID       int        `json:"userId" binding:"required,gt=0"`
	Notes        *string    `json:"notes" binding:"omitempty,max=500"`
	ReminderTime *time.Time `json:"reminderTime"`
}

// Add puts an event on a user's personal calendar. Re-adding an event updates
// its notes and reminder instead of duplicating the entry.
func (uc *CalendarUseCase) Add(ctx context.Context, eventID int, req *AddRequest) (*domain.UserCalendarEvent, error) {
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if _, err := uc.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	entry := &domain.UserCalendarEvent{
		UserID:       req.UserID,
		EventID:      eventID,
		Notes:        req.Notes,
		ReminderTime: req.ReminderTime,
	}
	if err := uc.calendarRepo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add calendar entry: %w", err)
	}
	return entry, nil
}

func (uc *CalendarUseCase) Remove(ctx context.Context, userID, eventID int) error {
	return uc.calendarRepo.Remove(ctx, userID, eventID)
}

// Status reports whether an event is on a user's calendar.
func (uc *CalendarUseCase) Status(ctx context.Context, userID, eventID int) (bool, error) {
	return uc.calendarRepo.IsInCalendar(ctx, userID, eventID)
}

func (uc *CalendarUseCase) ListEvents(ctx context.Context, userID int) ([]*domain.Event, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.calendarRepo.GetUserEvents(ctx, userID)
}

// ExportUserCalendar renders all of a user's calendar events as an iCalendar
// file, returning the content and a suggested filename.
func (uc *CalendarUseCase) ExportUserCalendar(ctx context.Context, userID int) (string, string, error) {
	events, err := uc.ListEvents(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return GenerateICS(events), calendarFilename(0), nil
}

// ExportEvent renders a single event as an iCalendar file.
func (uc *CalendarUseCase) ExportEvent(ctx context.Context, eventID int) (string, string, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return "", "", err
	}
	return GenerateICS([]*domain.Event{event}), calendarFilename(eventID), nil
}

func calendarFilename(eventID int) string {
	timestamp := time.Now().UTC().Format("20060102T150405")
	if eventID > 0 {
		return fmt.Sprintf("campusconnect-%d-calendar-%s.ics", eventID, timestamp)
	}
	return fmt.Sprintf("campusconnect-calendar-%s.ics", timestamp)
}
