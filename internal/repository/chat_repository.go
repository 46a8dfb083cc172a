package repository

import (
	"context"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, conversation *domain.ChatConversation) error
	GetConversation(ctx context.Context, id int) (*domain.ChatConversation, error)
	CreateMessage(ctx context.Context, message *domain.ChatMessage) error
	GetMessagesByConversationID(ctx context.Context, conversationID int) ([]*domain.ChatMessage, error)
}
