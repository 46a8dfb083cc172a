package memory

import (
	"context"
	"sort"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

type chatRepository struct {
	store *Store
}

func NewChatRepository(store *Store) repository.ChatRepository {
	return &chatRepository{store: store}
}

func (r *chatRepository) CreateConversation(ctx context.Context, conversation *domain.ChatConversation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	conversation.ID = r.store.conversationID
	r.store.conversationID++
	conversation.CreatedAt = now()

	stored := *conversation
	r.store.conversations[conversation.ID] = &stored
	return nil
}

func (r *chatRepository) GetConversation(ctx context.Context, id int) (*domain.ChatConversation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	conversation, ok := r.store.conversations[id]
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	copied := *conversation
	return &copied, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *domain.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.conversations[message.ConversationID]; !ok {
		return domain.ErrConversationNotFound
	}

	message.ID = r.store.messageID
	r.store.messageID++
	message.CreatedAt = now()

	stored := *message
	r.store.messages[message.ID] = &stored
	return nil
}

func (r *chatRepository) GetMessagesByConversationID(ctx context.Context, conversationID int) ([]*domain.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var messages []*domain.ChatMessage
	for _, message := range r.store.messages {
		if message.ConversationID == conversationID {
			copied := *message
			messages = append(messages, &copied)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].ID < messages[j].ID
	})
	return messages, nil
}
