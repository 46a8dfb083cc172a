package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campusconnect-backend/internal/usecase/calendar"
)

type CalendarHandler struct {
	calendarUseCase *calendar.CalendarUseCase
}

func NewCalendarHandler(calendarUseCase *calendar.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{
		calendarUseCase: calendarUseCase,
	}
}

type removeFromCalendarRequest struct {
	UserID int `json:"userId" binding:"required,gt=0"`
}

// AddToCalendar handles POST /api/events/:id/calendar
// @Summary Add an event to a user's calendar
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body calendar.AddRequest true "Calendar entry data"
// @Success 201 {object} domain.UserCalendarEvent
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/events/{id}/calendar [post]
func (h *CalendarHandler) AddToCalendar(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req calendar.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	entry, err := h.calendarUseCase.Add(c.Request.Context(), eventID, &req)
	if err != nil {
		respondError(c, err, "failed to add to calendar")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// RemoveFromCalendar handles DELETE /api/events/:id/calendar
// @Summary Remove an event from a user's calendar
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Router /api/events/{id}/calendar [delete]
func (h *CalendarHandler) RemoveFromCalendar(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req removeFromCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "userId is required",
		})
		return
	}

	if err := h.calendarUseCase.Remove(c.Request.Context(), req.UserID, eventID); err != nil {
		respondError(c, err, "failed to remove from calendar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CalendarStatus handles GET /api/events/:id/calendar/:userId
// @Summary Check whether an event is on a user's calendar
// @Tags calendar
// @Produce json
// @Param id path int true "Event ID"
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Router /api/events/{id}/calendar/{userId} [get]
func (h *CalendarHandler) CalendarStatus(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	inCalendar, err := h.calendarUseCase.Status(c.Request.Context(), userID, eventID)
	if err != nil {
		respondError(c, err, "failed to check calendar status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isInCalendar": inCalendar})
}

// ListCalendar handles GET /api/users/:userId/calendar
// @Summary List a user's calendar events
// @Tags calendar
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} domain.Event
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{userId}/calendar [get]
func (h *CalendarHandler) ListCalendar(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	events, err := h.calendarUseCase.ListEvents(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list calendar")
		return
	}
	c.JSON(http.StatusOK, events)
}

// ExportCalendar handles GET /api/users/:userId/calendar/export/ics
// @Summary Download a user's calendar as an .ics file
// @Tags calendar
// @Produce text/calendar
// @Param userId path int true "User ID"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{userId}/calendar/export/ics [get]
func (h *CalendarHandler) ExportCalendar(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	content, filename, err := h.calendarUseCase.ExportUserCalendar(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to export calendar")
		return
	}
	if content == "" {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "no calendar events found",
		})
		return
	}
	sendCalendarFile(c, content, filename)
}

// ExportEvent handles GET /api/events/:id/export/ics
// @Summary Download a single event as an .ics file
// @Tags calendar
// @Produce text/calendar
// @Param id path int true "Event ID"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Router /api/events/{id}/export/ics [get]
func (h *CalendarHandler) ExportEvent(c *gin.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	content, filename, err := h.calendarUseCase.ExportEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err, "failed to export event")
		return
	}
	sendCalendarFile(c, content, filename)
}

func sendCalendarFile(c *gin.Context, content, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}
