package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

func TestNew_SeedsDefaultCategories(t *testing.T) {
	store := New()
	repo := NewCategoryRepository(store)

	categories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)

	assert.Equal(t, "Sports", categories[0].Name)
	assert.Equal(t, 1, categories[0].ID)
	assert.True(t, categories[0].IsDefault)
	assert.Equal(t, "Social", categories[5].Name)
	assert.Equal(t, 6, categories[5].ID)
}

func TestEventRepository_MonotonicIDs(t *testing.T) {
	store := New()
	repo := NewEventRepository(store)
	ctx := context.Background()

	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	var lastID int
	for i := 0; i < 3; i++ {
		event := &domain.Event{Name: "Event", Location: "HUB", StartTime: start, EndTime: start}
		require.NoError(t, repo.Create(ctx, event))
		assert.Greater(t, event.ID, lastID)
		lastID = event.ID
	}
}

func TestEventRepository_GetAllOrderedByID(t *testing.T) {
	store := New()
	repo := NewEventRepository(store)
	ctx := context.Background()

	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Event{Name: "Event", Location: "HUB", StartTime: start, EndTime: start}))
	}

	events, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 5)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].ID, events[i-1].ID)
	}
}

func TestEventRepository_GetWithCategories(t *testing.T) {
	store := New()
	events := NewEventRepository(store)
	ctx := context.Background()

	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	event := &domain.Event{Name: "Hackathon", Location: "Westgate", StartTime: start, EndTime: start}
	require.NoError(t, events.Create(ctx, event))
	require.NoError(t, events.AddCategory(ctx, event.ID, 2))
	// Duplicate link is ignored.
	require.NoError(t, events.AddCategory(ctx, event.ID, 2))

	withCats, err := events.GetWithCategories(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, withCats.Categories, 1)
	assert.Equal(t, "Academic", withCats.Categories[0].Name)

	_, err = events.GetWithCategories(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestPreferenceRepository_OneRecordPerUser(t *testing.T) {
	store := New()
	repo := NewPreferenceRepository(store)
	ctx := context.Background()

	_, err := repo.GetByUserID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrPreferencesNotFound)

	prefs := &domain.UserPreferences{UserID: 1, PreferredCategories: []int{1}}
	require.NoError(t, repo.Create(ctx, prefs))
	assert.Equal(t, 1, prefs.ID)

	prefs.PreferredCategories = []int{2, 3}
	require.NoError(t, repo.Update(ctx, prefs))

	stored, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ID)
	assert.Equal(t, []int{2, 3}, stored.PreferredCategories)
}

func TestCalendarRepository_AddIsIdempotent(t *testing.T) {
	store := New()
	events := NewEventRepository(store)
	calendar := NewCalendarRepository(store)
	ctx := context.Background()

	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	event := &domain.Event{Name: "Concert", Location: "BJC", StartTime: start, EndTime: start}
	require.NoError(t, events.Create(ctx, event))

	require.NoError(t, calendar.Add(ctx, &domain.UserCalendarEvent{UserID: 1, EventID: event.ID}))
	require.NoError(t, calendar.Add(ctx, &domain.UserCalendarEvent{UserID: 1, EventID: event.ID}))

	userEvents, err := calendar.GetUserEvents(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, userEvents, 1)

	require.NoError(t, calendar.Remove(ctx, 1, event.ID))
	err = calendar.Remove(ctx, 1, event.ID)
	assert.ErrorIs(t, err, domain.ErrCalendarEventNotFound)
}

func TestWaitlistRepository_EmailUniqueness(t *testing.T) {
	store := New()
	repo := NewWaitlistRepository(store)
	ctx := context.Background()

	entry := &domain.WaitlistEntry{FirstName: "Ada", LastName: "L", Email: "ada@psu.edu", University: "PSU", Role: "student"}
	require.NoError(t, repo.Add(ctx, entry))

	duplicate := &domain.WaitlistEntry{FirstName: "Ada", LastName: "L", Email: "ADA@psu.edu", University: "PSU", Role: "student"}
	assert.ErrorIs(t, repo.Add(ctx, duplicate), domain.ErrEmailOnWaitlist)

	onList, err := repo.IsEmailOnWaitlist(ctx, "Ada@PSU.edu")
	require.NoError(t, err)
	assert.True(t, onList)
}
