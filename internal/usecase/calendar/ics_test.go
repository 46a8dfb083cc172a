package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

func TestGenerateICS_EmptyList(t *testing.T) {
	assert.Equal(t, "", GenerateICS(nil))
	assert.Equal(t, "", GenerateICS([]*domain.Event{}))
}

func TestGenerateICS_SingleEvent(t *testing.T) {
	url := "https://example.com/tickets"
	event := &domain.Event{
		ID:          42,
		Name:        "Spring Concert",
		Description: "Outdoor show; bring a blanket, chairs welcome",
		Location:    "Main Quad, Campus Drive",
		StartTime:   time.Date(2025, 4, 12, 18, 30, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 4, 12, 21, 0, 0, 0, time.UTC),
		ExternalURL: &url,
	}

	ics := GenerateICS([]*domain.Event{event})

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
	assert.Contains(t, ics, "UID:event-42@campusconnect")
	assert.Contains(t, ics, "DTSTART:20250412T183000Z")
	assert.Contains(t, ics, "DTEND:20250412T210000Z")
	assert.Contains(t, ics, "SUMMARY:Spring Concert")
	assert.Contains(t, ics, "URL:https://example.com/tickets")
	assert.Contains(t, ics, "STATUS:CONFIRMED")
	assert.Contains(t, ics, "ORGANIZER;CN=CampusConnect:mailto:noreply@campusconnect.app")

	// Commas and semicolons in text fields must be escaped.
	assert.Contains(t, ics, "DESCRIPTION:Outdoor show\\; bring a blanket\\, chairs welcome")
	assert.Contains(t, ics, "LOCATION:Main Quad\\, Campus Drive")
}

func TestGenerateICS_MultipleEvents(t *testing.T) {
	events := []*domain.Event{
		{ID: 1, Name: "First", StartTime: time.Now(), EndTime: time.Now()},
		{ID: 2, Name: "Second", StartTime: time.Now(), EndTime: time.Now()},
	}

	ics := GenerateICS(events)

	require.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
	assert.Contains(t, ics, "UID:event-1@campusconnect")
	assert.Contains(t, ics, "UID:event-2@campusconnect")
}
