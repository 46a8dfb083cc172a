package recommendation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
	"github.com/campushq/campusconnect-backend/internal/repository/memory"
)

// 2025-03-03 is a Monday.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	uc        *RecommendationUseCase
	prefRepo  repository.PreferenceRepository
	eventRepo repository.EventRepository
	clubRepo  repository.ClubRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.New()
	prefRepo := memory.NewPreferenceRepository(store)
	eventRepo := memory.NewEventRepository(store)
	clubRepo := memory.NewClubRepository(store)
	feedbackRepo := memory.NewFeedbackRepository(store)

	return &testEnv{
		uc:        NewRecommendationUseCase(prefRepo, eventRepo, clubRepo, feedbackRepo, zap.NewNop()),
		prefRepo:  prefRepo,
		eventRepo: eventRepo,
		clubRepo:  clubRepo,
	}
}

func (env *testEnv) createEvent(t *testing.T, event *domain.Event, categoryIDs ...int) *domain.Event {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, env.eventRepo.Create(ctx, event))
	for _, categoryID := range categoryIDs {
		require.NoError(t, env.eventRepo.AddCategory(ctx, event.ID, categoryID))
	}
	return event
}

func (env *testEnv) setPreferences(t *testing.T, userID int, categories []int) {
	t.Helper()

	_, err := env.uc.UpdatePreferences(context.Background(), userID, &UpdatePreferencesRequest{
		PreferredCategories: &categories,
	})
	require.NoError(t, err)
}

func TestScoreEvent_CategoryContribution(t *testing.T) {
	tests := []struct {
		name          string
		eventCats     []int
		preferredCats []int
		wantScore     float64
		wantMatched   bool
	}{
		{
			name:          "all categories match",
			eventCats:     []int{1, 2},
			preferredCats: []int{1, 2},
			wantScore:     0.4,
			wantMatched:   true,
		},
		{
			name:          "half of categories match",
			eventCats:     []int{1, 2},
			preferredCats: []int{1},
			wantScore:     0.4 * 1 / 2,
			wantMatched:   true,
		},
		{
			name:          "one of three matches",
			eventCats:     []int{1, 2, 3},
			preferredCats: []int{3, 4},
			wantScore:     0.4 * 1 / 3,
			wantMatched:   true,
		},
		{
			name:          "no overlap",
			eventCats:     []int{1, 2},
			preferredCats: []int{5},
			wantScore:     0,
			wantMatched:   false,
		},
		{
			name:          "event without categories contributes zero",
			eventCats:     nil,
			preferredCats: []int{1, 2},
			wantScore:     0,
			wantMatched:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &domain.EventWithCategories{
				Event: domain.Event{
					Name:      "Test Event",
					Location:  "nowhere",
					StartTime: monday.Add(9 * time.Hour),
				},
			}
			for _, id := range tt.eventCats {
				event.Categories = append(event.Categories, domain.Category{ID: id})
			}
			prefs := &domain.UserPreferences{PreferredCategories: tt.preferredCats}

			score, matched, _ := scoreEvent(event, prefs)

			assert.InDelta(t, tt.wantScore, score, 1e-9)
			if tt.wantMatched {
				assert.Equal(t, []string{"categories"}, matched)
			} else {
				assert.Empty(t, matched)
			}
		})
	}
}

func TestScoreEvent_FlatBonusAdditivity(t *testing.T) {
	// Monday 18:00 at the HUB: matches day of week, time of day (evening),
	// location, and featured, with zero categories.
	event := &domain.EventWithCategories{
		Event: domain.Event{
			Name:      "Open Mic Night",
			Location:  "HUB-Robeson Center",
			StartTime: monday.Add(18 * time.Hour),
			Featured:  true,
		},
	}
	prefs := &domain.UserPreferences{
		PreferredCategories: []int{1},
		PreferredDaysOfWeek: []string{"monday"},
		PreferredTimeOfDay:  []string{"evening"},
		LocationPreference:  "hub",
	}

	score, matched, reason := scoreEvent(event, prefs)

	assert.InDelta(t, 0.7, score, 1e-9)
	assert.Equal(t, []string{"day of week", "time of day", "location", "featured"}, matched)
	assert.Equal(t, "This event might interest you based on your preferences for day of week, time of day, location, featured", reason)
}

func TestScoreEvent_ReasonWithoutMatches(t *testing.T) {
	event := &domain.EventWithCategories{
		Event: domain.Event{
			Name:      "Obscure Lecture",
			Location:  "Willard Building",
			StartTime: monday.Add(9 * time.Hour),
		},
	}
	prefs := &domain.UserPreferences{PreferredCategories: []int{1}}

	score, matched, reason := scoreEvent(event, prefs)

	assert.Zero(t, score)
	assert.Empty(t, matched)
	assert.Equal(t, "This event might interest you", reason)
}

func TestTimeOfDayBucket(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{16, "afternoon"},
		{17, "evening"},
		{19, "evening"},
		{20, "night"},
		{23, "night"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timeOfDayBucket(tt.hour), "hour %d", tt.hour)
	}
}

func TestGetRecommendations_FeaturedFallback(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createEvent(t, &domain.Event{Name: "Featured A", Location: "HUB", StartTime: monday, EndTime: monday, Featured: true})
	env.createEvent(t, &domain.Event{Name: "Regular", Location: "HUB", StartTime: monday, EndTime: monday})
	env.createEvent(t, &domain.Event{Name: "Featured B", Location: "HUB", StartTime: monday, EndTime: monday, Featured: true})

	// No preferred categories, but every other facet set: fallback still wins.
	days := []string{"Monday"}
	loc := "HUB"
	_, err := env.uc.UpdatePreferences(ctx, 7, &UpdatePreferencesRequest{
		PreferredDaysOfWeek: &days,
		LocationPreference:  &loc,
	})
	require.NoError(t, err)

	recs, err := env.uc.GetRecommendations(ctx, 7, 5)
	require.NoError(t, err)

	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.True(t, rec.Featured)
		assert.Equal(t, 0.5, rec.RelevanceScore)
		assert.Equal(t, []string{"featured"}, rec.MatchedPreferences)
		assert.Equal(t, "This is a featured event that might interest you.", rec.SuggestedReason)
	}
}

func TestGetRecommendations_ScoredAndSorted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Categories 1 and 2 are seeded defaults (Sports, Academic).
	strong := env.createEvent(t, &domain.Event{
		Name: "Sports Night", Location: "IM Building",
		StartTime: monday.Add(18 * time.Hour), EndTime: monday.Add(20 * time.Hour),
	}, 1)
	weak := env.createEvent(t, &domain.Event{
		Name: "Mixed Workshop", Location: "Boucke",
		StartTime: monday.Add(9 * time.Hour), EndTime: monday.Add(10 * time.Hour),
	}, 1, 3)
	env.createEvent(t, &domain.Event{
		Name: "Unrelated Gala", Location: "Alumni Hall",
		StartTime: monday.Add(9 * time.Hour), EndTime: monday.Add(10 * time.Hour),
	}, 4)

	env.setPreferences(t, 1, []int{1})

	recs, err := env.uc.GetRecommendations(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, strong.ID, recs[0].ID)
	assert.InDelta(t, 0.4, recs[0].RelevanceScore, 1e-9)
	assert.Equal(t, []string{"categories"}, recs[0].MatchedPreferences)

	assert.Equal(t, weak.ID, recs[1].ID)
	assert.InDelta(t, 0.2, recs[1].RelevanceScore, 1e-9)

	assert.Zero(t, recs[2].RelevanceScore)
}

func TestGetRecommendations_Truncation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		env.createEvent(t, &domain.Event{
			Name: "Event", Location: "HUB",
			StartTime: monday, EndTime: monday,
		}, 1)
	}
	env.setPreferences(t, 1, []int{1})

	recs, err := env.uc.GetRecommendations(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestGetRecommendations_TiesKeepCatalogOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.createEvent(t, &domain.Event{
		Name: "First", Location: "HUB", StartTime: monday, EndTime: monday,
	}, 1)
	second := env.createEvent(t, &domain.Event{
		Name: "Second", Location: "HUB", StartTime: monday, EndTime: monday,
	}, 1)

	env.setPreferences(t, 1, []int{1})

	recs, err := env.uc.GetRecommendations(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, recs[0].RelevanceScore, recs[1].RelevanceScore)
	assert.Equal(t, first.ID, recs[0].ID)
	assert.Equal(t, second.ID, recs[1].ID)
}

func TestGetRecommendations_EmptyCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Without preferences: fallback branch over an empty catalog.
	recs, err := env.uc.GetRecommendations(ctx, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// With preferences: scored branch over an empty catalog.
	env.setPreferences(t, 2, []int{1})
	recs, err = env.uc.GetRecommendations(ctx, 2, 5)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGetRecommendations_DefaultLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < DefaultLimit+2; i++ {
		env.createEvent(t, &domain.Event{
			Name: "Event", Location: "HUB", StartTime: monday, EndTime: monday,
		}, 1)
	}
	env.setPreferences(t, 1, []int{1})

	recs, err := env.uc.GetRecommendations(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, recs, DefaultLimit)
}

func TestResolvePreferences_IdempotentCreation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.uc.ResolvePreferences(ctx, 42)
	require.NoError(t, err)
	second, err := env.uc.ResolvePreferences(ctx, 42)
	require.NoError(t, err)

	assert.Equal(t, 42, first.UserID)
	assert.Equal(t, first.ID, second.ID)
	assert.Empty(t, first.PreferredCategories)
	assert.Empty(t, first.PreferredDaysOfWeek)
	assert.Empty(t, first.PreferredTimeOfDay)
	assert.Empty(t, first.LocationPreference)

	// A different user still gets a fresh record.
	other, err := env.uc.ResolvePreferences(ctx, 43)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestUpdatePreferences_PartialMerge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cats := []int{1, 2}
	days := []string{"Friday"}
	_, err := env.uc.UpdatePreferences(ctx, 1, &UpdatePreferencesRequest{
		PreferredCategories: &cats,
		PreferredDaysOfWeek: &days,
	})
	require.NoError(t, err)

	// Only location supplied: categories and days must survive.
	loc := "downtown"
	updated, err := env.uc.UpdatePreferences(ctx, 1, &UpdatePreferencesRequest{
		LocationPreference: &loc,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, updated.PreferredCategories)
	assert.Equal(t, []string{"Friday"}, updated.PreferredDaysOfWeek)
	assert.Equal(t, "downtown", updated.LocationPreference)
}

func TestRecommendations_LocationOnlyReason(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createEvent(t, &domain.Event{
		Name: "Street Fair", Location: "Downtown State College",
		StartTime: monday.Add(9 * time.Hour), EndTime: monday.Add(11 * time.Hour),
	})
	env.setPreferences(t, 1, []int{1})

	loc := "downtown"
	_, err := env.uc.UpdatePreferences(ctx, 1, &UpdatePreferencesRequest{LocationPreference: &loc})
	require.NoError(t, err)

	recs, err := env.uc.GetRecommendations(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, []string{"location"}, recs[0].MatchedPreferences)
	assert.Equal(t, "This event might interest you based on your preferences for location", recs[0].SuggestedReason)
}

func TestRecordFeedback(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	event := env.createEvent(t, &domain.Event{
		Name: "Career Fair", Location: "BJC", StartTime: monday, EndTime: monday,
	})

	relevant := true
	req := &FeedbackRequest{
		UserID:         1,
		EventID:        &event.ID,
		SuggestionType: "event_recommendation",
		IsRelevant:     &relevant,
	}

	first, err := env.uc.RecordFeedback(ctx, req)
	require.NoError(t, err)
	second, err := env.uc.RecordFeedback(ctx, req)
	require.NoError(t, err)

	// Append-only: identical submissions become distinct records.
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	records, err := env.uc.FeedbackForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRecordFeedback_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *FeedbackRequest
	}{
		{
			name: "missing user id",
			req:  &FeedbackRequest{SuggestionType: "event_recommendation"},
		},
		{
			name: "missing suggestion type",
			req:  &FeedbackRequest{UserID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.uc.RecordFeedback(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}

	// Feedback for an event that does not exist is a not-found, not a write.
	missing := 999
	_, err := env.uc.RecordFeedback(ctx, &FeedbackRequest{
		UserID:         1,
		EventID:        &missing,
		SuggestionType: "event_recommendation",
	})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	records, err := env.uc.FeedbackForUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, records)
}
