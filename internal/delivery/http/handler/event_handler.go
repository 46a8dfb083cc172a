package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campusconnect-backend/internal/usecase/event"
)

type EventHandler struct {
	eventUseCase *event.EventUseCase
}

func NewEventHandler(eventUseCase *event.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

// ListEvents handles GET /api/events
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} ErrorResponse
// @Router /api/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventUseCase.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/events/:id
// @Summary Get an event with its categories and organizer
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.EventWithCategories
// @Failure 404 {object} ErrorResponse
// @Router /api/events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	eventDetail, err := h.eventUseCase.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get event")
		return
	}
	c.JSON(http.StatusOK, eventDetail)
}

// FeaturedEvents handles GET /api/events/featured
// @Summary List featured events
// @Tags events
// @Produce json
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {array} domain.Event
// @Failure 500 {object} ErrorResponse
// @Router /api/events/featured [get]
func (h *EventHandler) FeaturedEvents(c *gin.Context) {
	events, err := h.eventUseCase.FeaturedEvents(c.Request.Context(), queryLimit(c))
	if err != nil {
		respondError(c, err, "failed to list featured events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /api/events
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body event.CreateEventRequest true "Event data"
// @Success 201 {object} domain.EventWithCategories
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.eventUseCase.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to create event")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Rsvp handles POST /api/events/:id/rsvp
// @Summary RSVP to an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body event.RsvpRequest true "RSVP data"
// @Success 201 {object} domain.EventRsvp
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/events/{id}/rsvp [post]
func (h *EventHandler) Rsvp(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req event.RsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	rsvp, err := h.eventUseCase.Rsvp(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "failed to record rsvp")
		return
	}
	c.JSON(http.StatusCreated, rsvp)
}

// ListRsvps handles GET /api/events/:id/rsvps
// @Summary List RSVPs for an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} domain.EventRsvp
// @Failure 404 {object} ErrorResponse
// @Router /api/events/{id}/rsvps [get]
func (h *EventHandler) ListRsvps(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rsvps, err := h.eventUseCase.ListRsvps(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to list rsvps")
		return
	}
	c.JSON(http.StatusOK, rsvps)
}

// SuggestCategories handles POST /api/ai/suggest-categories
// @Summary Suggest categories for an event description
// @Tags events
// @Accept json
// @Produce json
// @Param request body event.SuggestCategoriesRequest true "Event description"
// @Success 200 {object} event.SuggestCategoriesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/ai/suggest-categories [post]
func (h *EventHandler) SuggestCategories(c *gin.Context) {
	var req event.SuggestCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "event description is required",
		})
		return
	}

	ids, err := h.eventUseCase.SuggestCategoriesForDescription(c.Request.Context(), req.Description)
	if err != nil {
		respondError(c, err, "failed to suggest categories")
		return
	}
	c.JSON(http.StatusOK, event.SuggestCategoriesResponse{CategoryIDs: ids})
}

// LocalEvents handles GET /api/events/local-events
// @Summary List events from external providers
// @Description Fetch nearby events from SeatGeek and Ticketmaster with suggested categories
// @Tags events
// @Produce json
// @Param city query string false "City" default(State College)
// @Param state query string false "State code" default(PA)
// @Success 200 {array} event.LocalEvent
// @Failure 500 {object} ErrorResponse
// @Router /api/events/local-events [get]
func (h *EventHandler) LocalEvents(c *gin.Context) {
	events, err := h.eventUseCase.LocalEvents(c.Request.Context(), c.Query("city"), c.Query("state"))
	if err != nil {
		respondError(c, err, "failed to fetch local events")
		return
	}
	c.JSON(http.StatusOK, events)
}
