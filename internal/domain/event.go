package domain

import "time"

type Event struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	StartTime   time.Time `json:"startTime" db:"start_time"`
	EndTime     time.Time `json:"endTime" db:"end_time"`
	OrganizerID int       `json:"organizerId" db:"organizer_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Featured    bool      `json:"featured" db:"featured"`

	// Set only for events imported from external providers.
	ExternalID  *string `json:"externalId" db:"external_id"`
	ExternalURL *string `json:"externalUrl" db:"external_url"`
	Source      *string `json:"source" db:"source"`
}

// EventWithCategories is an event joined with its resolved categories and
// organizer, as served by the event detail endpoint and consumed by the
// recommendation scorer.
type EventWithCategories struct {
	Event
	Categories []Category `json:"categories"`
	Organizer  *User      `json:"organizer,omitempty"`
}

// RecommendedEvent is the request-scoped scoring result for a single event.
// It is computed fresh on every recommendation request and never stored.
// The JSON field names are a compatibility contract with existing clients.
type RecommendedEvent struct {
	Event
	RelevanceScore     float64  `json:"relevanceScore"`
	MatchedPreferences []string `json:"matchedPreferences"`
	SuggestedReason    string   `json:"suggestedReason"`
}

type EventRsvp struct {
	UserID    int       `json:"userId" db:"user_id"`
	EventID   int       `json:"eventId" db:"event_id"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UserCalendarEvent links an event into a user's personal calendar.
type UserCalendarEvent struct {
	ID           int        `json:"id" db:"id"`
	UserID       int        `json:"userId" db:"user_id"`
	EventID      int        `json:"eventId" db:"event_id"`
	Notes        *string    `json:"notes" db:"notes"`
	ReminderTime *time.Time `json:"reminderTime" db:"reminder_time"`
	AddedAt      time.Time  `json:"addedAt" db:"added_at"`
}
