package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/delivery/http/handler"
	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository/memory"
	"github.com/campushq/campusconnect-backend/internal/usecase/calendar"
	"github.com/campushq/campusconnect-backend/internal/usecase/chat"
	"github.com/campushq/campusconnect-backend/internal/usecase/club"
	"github.com/campushq/campusconnect-backend/internal/usecase/event"
	"github.com/campushq/campusconnect-backend/internal/usecase/recommendation"
	"github.com/campushq/campusconnect-backend/internal/usecase/user"
)

type testApp struct {
	engine *gin.Engine
	store  *memory.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	users := memory.NewUserRepository(store)
	waitlist := memory.NewWaitlistRepository(store)
	categories := memory.NewCategoryRepository(store)
	events := memory.NewEventRepository(store)
	clubs := memory.NewClubRepository(store)
	preferences := memory.NewPreferenceRepository(store)
	feedback := memory.NewFeedbackRepository(store)
	chatRepo := memory.NewChatRepository(store)
	calendarRepo := memory.NewCalendarRepository(store)

	log := zap.NewNop()

	userUseCase := user.NewUserUseCase(users, waitlist)
	eventUseCase := event.NewEventUseCase(events, categories, users, nil, nil, log)
	clubUseCase := club.NewClubUseCase(clubs, categories, users, log)
	recommendationUseCase := recommendation.NewRecommendationUseCase(preferences, events, clubs, feedback, log)
	calendarUseCase := calendar.NewCalendarUseCase(calendarRepo, events, users)
	chatUseCase := chat.NewChatUseCase(chatRepo, events, clubs, categories, nil, log)

	router := NewRouter(
		handler.NewUserHandler(userUseCase),
		handler.NewCategoryHandler(eventUseCase),
		handler.NewEventHandler(eventUseCase),
		handler.NewClubHandler(clubUseCase),
		handler.NewRecommendationHandler(recommendationUseCase),
		handler.NewCalendarHandler(calendarUseCase),
		handler.NewChatHandler(chatUseCase),
		log,
	)

	return &testApp{engine: router.Setup(), store: store}
}

func (app *testApp) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.engine.ServeHTTP(w, req)
	return w
}

func (app *testApp) createUser(t *testing.T) *domain.User {
	t.Helper()

	u := &domain.User{
		Username:  "jsmith",
		Password:  "hashed",
		Email:     "jsmith@example.edu",
		FirstName: "Jordan",
		LastName:  "Smith",
		Role:      "student",
	}
	require.NoError(t, memory.NewUserRepository(app.store).Create(context.Background(), u))
	return u
}

func (app *testApp) createEvent(t *testing.T, name string, featured bool, categoryIDs ...int) *domain.Event {
	t.Helper()

	events := memory.NewEventRepository(app.store)
	ev := &domain.Event{
		Name:        name,
		Description: "campus event",
		Location:    "Student Union",
		StartTime:   time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC),
		OrganizerID: 1,
		Featured:    featured,
	}
	require.NoError(t, events.Create(context.Background(), ev))
	for _, id := range categoryIDs {
		require.NoError(t, events.AddCategory(context.Background(), ev.ID, id))
	}
	return ev
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPreferencesRoundTrip(t *testing.T) {
	app := newTestApp(t)
	u := app.createUser(t)

	update := map[string]interface{}{
		"preferredCategories": []int{1, 2},
		"preferredDaysOfWeek": []string{"Monday"},
		"locationPreference":  "union",
	}
	w := app.request(t, http.MethodPut, "/api/users/1/preferences", update)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodGet, "/api/users/1/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var prefs domain.UserPreferences
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prefs))
	assert.Equal(t, u.ID, prefs.UserID)
	assert.Equal(t, []int{1, 2}, prefs.PreferredCategories)
	assert.Equal(t, []string{"Monday"}, prefs.PreferredDaysOfWeek)
	assert.Equal(t, "union", prefs.LocationPreference)
}

func TestUpdatePreferences_RejectsInvalidWeekday(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t)

	update := map[string]interface{}{
		"preferredDaysOfWeek": []string{"Funday"},
	}
	w := app.request(t, http.MethodPut, "/api/users/1/preferences", update)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendedEventsEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t)
	app.createEvent(t, "Sports Meetup", false, 1)
	app.createEvent(t, "Unrelated Talk", false)

	update := map[string]interface{}{"preferredCategories": []int{1}}
	w := app.request(t, http.MethodPut, "/api/users/1/preferences", update)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodGet, "/api/users/1/recommended-events?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recommended []domain.RecommendedEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recommended))
	require.Len(t, recommended, 1)
	assert.Equal(t, "Sports Meetup", recommended[0].Name)
	assert.InDelta(t, 0.4, recommended[0].RelevanceScore, 1e-9)
	assert.Contains(t, recommended[0].MatchedPreferences, "categories")
}

func TestFeedbackEndpoints(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t)
	ev := app.createEvent(t, "Jazz Night", false)

	body := map[string]interface{}{
		"userId":         1,
		"eventId":        ev.ID,
		"suggestionType": "event",
		"isRelevant":     true,
	}
	w := app.request(t, http.MethodPost, "/api/ai-suggestions/feedback", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.request(t, http.MethodGet, "/api/users/1/ai-suggestions/feedback", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feedback []domain.AiSuggestionFeedback
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feedback))
	require.Len(t, feedback, 1)
	assert.Equal(t, "event", feedback[0].SuggestionType)
	require.NotNil(t, feedback[0].EventID)
	assert.Equal(t, ev.ID, *feedback[0].EventID)
}

func TestFeedback_MissingSuggestionType(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t)

	body := map[string]interface{}{"userId": 1}
	w := app.request(t, http.MethodPost, "/api/ai-suggestions/feedback", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWaitlistDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	body := map[string]interface{}{
		"firstName":  "Jordan",
		"lastName":   "Smith",
		"email":      "jordan@example.edu",
		"university": "State University",
		"role":       "student",
	}
	w := app.request(t, http.MethodPost, "/api/waitlist", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.request(t, http.MethodPost, "/api/waitlist", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEventCalendarExport(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t)
	app.createEvent(t, "Career Fair", false)

	w := app.request(t, http.MethodGet, "/api/events/1/export/ics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;"))
	assert.Contains(t, w.Body.String(), "SUMMARY:Career Fair")
	assert.Contains(t, w.Body.String(), "UID:event-1@campusconnect")
}

func TestCalendarLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t)
	app.createEvent(t, "Hackathon", false)

	w := app.request(t, http.MethodPost, "/api/events/1/calendar", map[string]interface{}{"userId": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.request(t, http.MethodGet, "/api/events/1/calendar/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isInCalendar":true}`, w.Body.String())

	w = app.request(t, http.MethodGet, "/api/users/1/calendar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Hackathon", events[0].Name)

	w = app.request(t, http.MethodDelete, "/api/events/1/calendar", map[string]interface{}{"userId": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.request(t, http.MethodDelete, "/api/events/1/calendar", map[string]interface{}{"userId": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserCalendarExport_EmptyIs404(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t)

	w := app.request(t, http.MethodGet, "/api/users/1/calendar/export/ics", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatConversationFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/chat/conversations", map[string]interface{}{})
	require.Equal(t, http.StatusCreated, w.Code)

	var conversation domain.ChatConversation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conversation))
	require.Equal(t, 1, conversation.ID)

	// Without an AI client configured the assistant degrades to a canned reply.
	w = app.request(t, http.MethodPost, "/api/chat/conversations/1/messages", map[string]interface{}{
		"content": "What events are happening this week?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reply domain.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.False(t, reply.IsFromUser)
	assert.NotEmpty(t, reply.Content)

	w = app.request(t, http.MethodGet, "/api/chat/conversations/1/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []domain.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.True(t, messages[0].IsFromUser)
	assert.False(t, messages[1].IsFromUser)
}

func TestGetEventNotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/events/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriesSeeded(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 6)
	assert.Equal(t, "Sports", categories[0].Name)
	assert.True(t, categories[0].IsDefault)
}
