package eventsource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

func TestSuggestCategoryName(t *testing.T) {
	tests := []struct {
		name        string
		eventName   string
		description string
		want        string
	}{
		{"concert in title", "Spring Concert", "outdoor stage", "Music"},
		{"band in description", "Friday Night", "live band on the lawn", "Music"},
		{"versus matchup", "Lions vs Tigers", "big rivalry", "Sports"},
		{"workshop", "Resume Workshop", "hands-on session", "Academic"},
		{"networking", "Alumni Evening", "networking with graduates", "Social"},
		{"charity", "Winter Charity Gala", "annual fundraiser", "Community Service"},
		{"performance", "Hamlet", "a classic performance", "Arts & Culture"},
		{"no keywords", "Weekly Gathering", "come hang out", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &domain.Event{Name: tt.eventName, Description: tt.description}
			assert.Equal(t, tt.want, SuggestCategoryName(event))
		})
	}
}

func TestResolveCategory_PrefersExisting(t *testing.T) {
	existing := []*domain.Category{
		{ID: 1, Name: "Sports", Color: "#4CAF50", IsDefault: true},
	}

	got := ResolveCategory("sports", existing)

	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Sports", got.Name)
}

func TestResolveCategory_VirtualFallback(t *testing.T) {
	existing := []*domain.Category{
		{ID: 1, Name: "Sports"},
		{ID: 2, Name: "Academic"},
	}

	got := ResolveCategory("Music", existing)

	assert.Equal(t, virtualCategoryIDBase+3, got.ID)
	assert.Equal(t, "Music", got.Name)
	assert.Equal(t, "#2196F3", got.Color)
	assert.False(t, got.IsDefault)
	assert.Nil(t, got.CreatedBy)
}

func TestResolveCategory_UnknownNameGetsDefaultColor(t *testing.T) {
	got := ResolveCategory("Mystery", nil)

	assert.Equal(t, "#607D8B", got.Color)
}
