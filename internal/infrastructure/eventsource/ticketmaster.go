package eventsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

const ticketmasterBaseURL = "https://app.ticketmaster.com/discovery/v2/events.json"

const ticketmasterIDBase = 2000000

// externalOrganizerID attributes imported events to the seeded system user.
const externalOrganizerID = 1

type tmDate struct {
	DateTime  string `json:"dateTime"`
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
}

type tmVenue struct {
	Name    string `json:"name"`
	Address struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		Name      string `json:"name"`
		StateCode string `json:"stateCode"`
	} `json:"state"`
}

type tmEvent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Dates       struct {
		Start tmDate  `json:"start"`
		End   *tmDate `json:"end"`
	} `json:"dates"`
	Embedded *struct {
		Venues []tmVenue `json:"venues"`
	} `json:"_embedded"`
}

type tmResponse struct {
	Embedded *struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
}

// TicketmasterClient fetches events from the Ticketmaster Discovery API.
type TicketmasterClient struct {
	httpClient *http.Client
	apiKey     string
}

func NewTicketmasterClient(apiKey string) *TicketmasterClient {
	return &TicketmasterClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
	}
}

// FetchEvents returns up to 10 upcoming events for the given city and state
// code. Returns an empty slice without calling the API when no key is
// configured.
func (c *TicketmasterClient) FetchEvents(ctx context.Context, city, stateCode string) ([]*domain.Event, error) {
	if c.apiKey == "" {
		return []*domain.Event{}, nil
	}

	params := url.Values{}
	params.Set("city", city)
	params.Set("stateCode", stateCode)
	params.Set("size", "10")
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ticketmasterBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build ticketmaster request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticketmaster events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ticketmaster returned status %d", resp.StatusCode)
	}

	var payload tmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode ticketmaster response: %w", err)
	}

	if payload.Embedded == nil {
		return []*domain.Event{}, nil
	}

	events := make([]*domain.Event, 0, len(payload.Embedded.Events))
	for i, te := range payload.Embedded.Events {
		events = append(events, convertTicketmasterEvent(te, ticketmasterIDBase+i+1))
	}
	return events, nil
}

func convertTicketmasterEvent(te tmEvent, id int) *domain.Event {
	startTime := parseTMDate(te.Dates.Start)

	endTime := startTime.Add(3 * time.Hour)
	if te.Dates.End != nil && te.Dates.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, te.Dates.End.DateTime); err == nil {
			endTime = t
		}
	}

	location := "Location TBD"
	if te.Embedded != nil && len(te.Embedded.Venues) > 0 {
		v := te.Embedded.Venues[0]
		location = fmt.Sprintf("%s, %s, %s, %s", v.Name, v.Address.Line1, v.City.Name, v.State.StateCode)
	}

	description := te.Description
	if description == "" {
		description = fmt.Sprintf("%s - Ticketmaster Event", te.Name)
	}

	externalID := fmt.Sprintf("ticketmaster_%s", te.ID)
	externalURL := te.URL
	source := "ticketmaster"

	return &domain.Event{
		ID:          id,
		Name:        te.Name,
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

func parseTMDate(d tmDate) time.Time {
	if d.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, d.DateTime); err == nil {
			return t
		}
	}
	localTime := d.LocalTime
	if localTime == "" {
		localTime = "19:00:00"
	}
	if t, err := time.Parse("2006-01-02T15:04:05", d.LocalDate+"T"+localTime); err == nil {
		return t
	}
	return time.Now()
}
