package domain

import "time"

// TimeOfDay bucket names accepted in preferences. Event start hours map to
// buckets as: <12 morning, <17 afternoon, <20 evening, otherwise night.
var TimeOfDayBuckets = []string{"morning", "afternoon", "evening", "night"}

// UserPreferences is the per-user input to the recommendation scorer.
// A user that has never saved preferences gets a default-empty record the
// first time one is requested; records are never deleted.
type UserPreferences struct {
	ID                  int       `json:"id" db:"id"`
	UserID              int       `json:"userId" db:"user_id"`
	PreferredCategories []int     `json:"preferredCategories" db:"preferred_categories"`
	PreferredDaysOfWeek []string  `json:"preferredDaysOfWeek" db:"preferred_days_of_week"`
	PreferredTimeOfDay  []string  `json:"preferredTimeOfDay" db:"preferred_time_of_day"`
	LocationPreference  string    `json:"locationPreference" db:"location_preference"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}
