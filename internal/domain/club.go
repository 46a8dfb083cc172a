package domain

import "time"

type Club struct {
	ID              int        `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Description     string     `json:"description" db:"description"`
	MeetingLocation *string    `json:"meetingLocation" db:"meeting_location"`
	FoundedDate     *time.Time `json:"foundedDate" db:"founded_date"`
	PresidentID     int        `json:"presidentId" db:"president_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	Featured        bool       `json:"featured" db:"featured"`
}

type ClubWithCategories struct {
	Club
	Categories []Category `json:"categories"`
	President  *User      `json:"president,omitempty"`
}

type ClubMember struct {
	UserID   int       `json:"userId" db:"user_id"`
	ClubID   int       `json:"clubId" db:"club_id"`
	Role     string    `json:"role" db:"role"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}
