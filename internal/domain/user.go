package domain

import "time"

type User struct {
	ID         int       `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	Password   string    `json:"-" db:"password"`
	Email      string    `json:"email" db:"email"`
	FirstName  string    `json:"firstName" db:"first_name"`
	LastName   string    `json:"lastName" db:"last_name"`
	Role       string    `json:"role" db:"role"`
	University *string   `json:"university" db:"university"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// WaitlistEntry is a pre-launch signup. Emails are unique, compared
// case-insensitively.
type WaitlistEntry struct {
	ID           int       `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	University   string    `json:"university" db:"university"`
	Role         string    `json:"role" db:"role"`
	Interests    []string  `json:"interests" db:"interests"`
	WantsUpdates bool      `json:"wantsUpdates" db:"wants_updates"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
