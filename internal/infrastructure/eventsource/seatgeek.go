package eventsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

const seatGeekBaseURL = "https://api.seatgeek.com/2/events"

// seatGeekIDBase keeps synthetic ids for unsaved external events out of the
// range the store uses for persisted ones.
const seatGeekIDBase = 1000000

type seatGeekVenue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

type seatGeekEvent struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	URL           string        `json:"url"`
	DatetimeLocal string        `json:"datetime_local"`
	Venue         seatGeekVenue `json:"venue"`
}

type seatGeekResponse struct {
	Events []seatGeekEvent `json:"events"`
}

// SeatGeekClient fetches events from the SeatGeek discovery API.
// The API accepts unauthenticated requests at low volume, so ClientID may
// be empty.
type SeatGeekClient struct {
	httpClient *http.Client
	clientID   string
}

func NewSeatGeekClient(clientID string) *SeatGeekClient {
	return &SeatGeekClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		clientID:   clientID,
	}
}

// FetchEvents returns up to 10 upcoming events for the given city and state.
func (c *SeatGeekClient) FetchEvents(ctx context.Context, city, state string) ([]*domain.Event, error) {
	params := url.Values{}
	params.Set("venue.city", city)
	params.Set("venue.state", state)
	params.Set("per_page", "10")
	if c.clientID != "" {
		params.Set("client_id", c.clientID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, seatGeekBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build seatgeek request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seatgeek events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seatgeek returned status %d", resp.StatusCode)
	}

	var payload seatGeekResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode seatgeek response: %w", err)
	}

	events := make([]*domain.Event, 0, len(payload.Events))
	for i, sge := range payload.Events {
		events = append(events, convertSeatGeekEvent(sge, seatGeekIDBase+i+1))
	}
	return events, nil
}

func convertSeatGeekEvent(sge seatGeekEvent, id int) *domain.Event {
	startTime, err := time.Parse("2006-01-02T15:04:05", sge.DatetimeLocal)
	if err != nil {
		startTime = time.Now()
	}
	endTime := startTime.Add(2 * time.Hour)

	description := sge.Description
	if description == "" {
		description = fmt.Sprintf("%s at %s", sge.Title, sge.Venue.Name)
	}

	location := strings.Join([]string{sge.Venue.Name, sge.Venue.Address, sge.Venue.City, sge.Venue.State}, ", ")

	externalID := fmt.Sprintf("seatgeek_%d", sge.ID)
	externalURL := sge.URL
	source := "seatgeek"

	return &domain.Event{
		ID:          id,
		Name:        sge.Title,
		Description: description,
		Location:    location,
		StartTime:   startTime,
		EndTime:     endTime,
		OrganizerID: externalOrganizerID,
		CreatedAt:   time.Now(),
		Featured:    false,
		ExternalID:  &externalID,
		ExternalURL: &externalURL,
		Source:      &source,
	}
}
