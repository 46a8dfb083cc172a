package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

type eventCategory struct {
	eventID    int
	categoryID int
}

type clubCategory struct {
	clubID     int
	categoryID int
}

// Store is an in-process keyed store holding every entity the application
// knows about. Ids are assigned per entity type and increase monotonically.
// All access goes through the repository constructors below so that tests and
// the recommendation engine receive an isolated store per instance instead of
// sharing process-wide state.
type Store struct {
	mu sync.RWMutex

	users           map[int]*domain.User
	categories      map[int]*domain.Category
	events          map[int]*domain.Event
	eventCategories []eventCategory
	clubs           map[int]*domain.Club
	clubCategories  []clubCategory
	eventRsvps      []*domain.EventRsvp
	clubMembers     []*domain.ClubMember
	waitlist        map[int]*domain.WaitlistEntry
	conversations   map[int]*domain.ChatConversation
	messages        map[int]*domain.ChatMessage
	calendarEvents  []*domain.UserCalendarEvent
	preferences     map[int]*domain.UserPreferences // keyed by user id
	feedback        []*domain.AiSuggestionFeedback

	userID         int
	categoryID     int
	eventID        int
	clubID         int
	waitlistID     int
	conversationID int
	messageID      int
	calendarID     int
	preferenceID   int
	feedbackID     int
}

// New creates an empty store seeded with the six default categories.
func New() *Store {
	s := &Store{
		users:         make(map[int]*domain.User),
		categories:    make(map[int]*domain.Category),
		events:        make(map[int]*domain.Event),
		clubs:         make(map[int]*domain.Club),
		waitlist:      make(map[int]*domain.WaitlistEntry),
		conversations: make(map[int]*domain.ChatConversation),
		messages:      make(map[int]*domain.ChatMessage),
		preferences:   make(map[int]*domain.UserPreferences),

		userID:         1,
		categoryID:     1,
		eventID:        1,
		clubID:         1,
		waitlistID:     1,
		conversationID: 1,
		messageID:      1,
		calendarID:     1,
		preferenceID:   1,
		feedbackID:     1,
	}

	defaults := []domain.Category{
		{Name: "Sports", Color: "#4CAF50", IsDefault: true},
		{Name: "Academic", Color: "#2196F3", IsDefault: true},
		{Name: "Arts", Color: "#F44336", IsDefault: true},
		{Name: "Cultural", Color: "#9C27B0", IsDefault: true},
		{Name: "Professional", Color: "#FF9800", IsDefault: true},
		{Name: "Social", Color: "#795548", IsDefault: true},
	}
	for i := range defaults {
		cat := defaults[i]
		cat.ID = s.categoryID
		s.categoryID++
		s.categories[cat.ID] = &cat
	}

	return s
}

func now() time.Time {
	return time.Now()
}

// sortedEventIDs returns event ids in ascending order. Catalog iteration order
// is the documented tie-break for equal relevance scores, so it has to be
// stable across calls.
func (s *Store) sortedEventIDs() []int {
	ids := make([]int, 0, len(s.events))
	for id := range s.events {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *Store) sortedClubIDs() []int {
	ids := make([]int, 0, len(s.clubs))
	for id := range s.clubs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *Store) categoriesForEvent(eventID int) []domain.Category {
	var cats []domain.Category
	for _, ec := range s.eventCategories {
		if ec.eventID != eventID {
			continue
		}
		if cat, ok := s.categories[ec.categoryID]; ok {
			cats = append(cats, *cat)
		}
	}
	return cats
}

func (s *Store) categoriesForClub(clubID int) []domain.Category {
	var cats []domain.Category
	for _, cc := range s.clubCategories {
		if cc.clubID != clubID {
			continue
		}
		if cat, ok := s.categories[cc.categoryID]; ok {
			cats = append(cats, *cat)
		}
	}
	return cats
}
