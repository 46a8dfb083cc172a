package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type chatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateConversation(ctx context.Context, conversation *domain.ChatConversation) error {
	query := `
		INSERT INTO chat_conversations (user_id)
		VALUES ($1)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, conversation.UserID).Scan(&conversation.ID, &conversation.CreatedAt)
}

func (r *chatRepository) GetConversation(ctx context.Context, id int) (*domain.ChatConversation, error) {
	var conversation domain.ChatConversation
	query := `SELECT * FROM chat_conversations WHERE id = $1`
	err := r.db.GetContext(ctx, &conversation, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *domain.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (conversation_id, content, is_from_user)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		message.ConversationID, message.Content, message.IsFromUser,
	).Scan(&message.ID, &message.CreatedAt)
}

func (r *chatRepository) GetMessagesByConversationID(ctx context.Context, conversationID int) ([]*domain.ChatMessage, error) {
	messages := []*domain.ChatMessage{}
	query := `SELECT * FROM chat_messages WHERE conversation_id = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &messages, query, conversationID); err != nil {
		return nil, err
	}
	return messages, nil
}
