package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// CampusData is the live catalog snapshot injected into the assistant prompt.
type CampusData struct {
	Events     interface{}
	Clubs      interface{}
	Categories interface{}
}

// ChatTurn is a single prior message in a conversation.
type ChatTurn struct {
	Role    string
	Content string
}

const fallbackReply = "I'm experiencing some technical difficulties right now. Please try again later."

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateChatResponse answers a user message with the campus catalog as
// grounding context. Errors from the model degrade to a canned reply so the
// chat endpoint never fails because the upstream API is down.
func (c *GeminiClient) GenerateChatResponse(ctx context.Context, history []ChatTurn, userMessage string, data CampusData) (string, error) {
	eventsJSON, _ := json.Marshal(data.Events)
	clubsJSON, _ := json.Marshal(data.Clubs)
	categoriesJSON, _ := json.Marshal(data.Categories)

	var sb strings.Builder
	sb.WriteString(`You are an AI assistant for a campus events and clubs platform called CampusConnect.
You help students find information about events, clubs, and activities on campus.

Here is the current data about campus events and clubs:

Events: ` + string(eventsJSON) + `

Clubs: ` + string(clubsJSON) + `

Categories: ` + string(categoriesJSON) + `

When responding to questions about events or clubs, try to be specific and provide details like time, location, and descriptions.
If a user wants to RSVP or join something, guide them on how to use the platform to do so.
If you don't know the answer to a question, be honest and suggest they contact the appropriate university office or club.
Be friendly, helpful, and concise in your responses.

`)
	for _, turn := range history {
		sb.WriteString(turn.Role + ": " + turn.Content + "\n")
	}
	sb.WriteString("user: " + userMessage)

	resp, err := c.model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return fallbackReply, nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fallbackReply, nil
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	reply := strings.TrimSpace(out.String())
	if reply == "" {
		return fallbackReply, nil
	}
	return reply, nil
}

// SuggestEventCategories asks the model to pick matching category IDs for an
// event description. Returns an empty slice on any model or parse failure.
func (c *GeminiClient) SuggestEventCategories(ctx context.Context, description string, available []CategoryOption) ([]int, error) {
	availableJSON, _ := json.Marshal(available)
	prompt := fmt.Sprintf(`You are a categorization assistant for campus events. Based on the event description,
suggest which categories from the available list best match the event.
Respond with a JSON array containing the category IDs. Example: [1, 3]
Available categories: %s

Event description: %s`, string(availableJSON), description)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return []int{}, nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return []int{}, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var ids []int
	if err := json.Unmarshal([]byte(responseText), &ids); err != nil {
		return []int{}, nil
	}
	return ids, nil
}

// CategoryOption is the id/name pair offered to the categorization prompt.
type CategoryOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
