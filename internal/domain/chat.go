package domain

import "time"

type ChatConversation struct {
	ID        int       `json:"id" db:"id"`
	UserID    *int      `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ChatMessage struct {
	ID             int       `json:"id" db:"id"`
	ConversationID int       `json:"conversationId" db:"conversation_id"`
	Content        string    `json:"content" db:"content"`
	IsFromUser     bool      `json:"isFromUser" db:"is_from_user"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
