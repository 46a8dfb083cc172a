package chat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campushq/campusconnect-backend/internal/domain"
	"github.com/campushq/campusconnect-backend/internal/infrastructure/gemini"
	"github.com/campushq/campusconnect-backend/internal/repository"
)

const unavailableReply = "I'm experiencing some technical difficulties right now. Please try again later."

type ChatUseCase struct {
	chatRepo     repository.ChatRepository
	eventRepo    repository.EventRepository
	clubRepo     repository.ClubRepository
	categoryRepo repository.CategoryRepository
	geminiClient *gemini.GeminiClient
	logger       *zap.Logger
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	eventRepo repository.EventRepository,
	clubRepo repository.ClubRepository,
	categoryRepo repository.CategoryRepository,
	geminiClient *gemini.GeminiClient,
	logger *zap.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:     chatRepo,
		eventRepo:    eventRepo,
		clubRepo:     clubRepo,
		categoryRepo: categoryRepo,
		geminiClient: geminiClient,
		logger:       logger,
	}
}

// StartConversationRequest represents a new conversation
type StartConversationRequest struct {
	UserID *int `json:"userId" binding:"omitempty,gt=0"`
}

// MessageRequest represents an incoming chat message
type MessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// StartConversation opens a new conversation thread, optionally tied to a
// user.
func (uc *ChatUseCase) StartConversation(ctx context.Context, req *StartConversationRequest) (*domain.ChatConversation, error) {
	conversation := &domain.ChatConversation{UserID: req.UserID}
	if err := uc.chatRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conversation, nil
}

// SendMessage stores the user's message in an existing conversation, generates
// an assistant reply grounded in the current catalog, stores it, and returns
// the assistant message.
func (uc *ChatUseCase) SendMessage(ctx context.Context, conversationID int, req *MessageRequest) (*domain.ChatMessage, error) {
	if _, err := uc.chatRepo.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	history := uc.conversationHistory(ctx, conversationID)

	userMsg := &domain.ChatMessage{
		ConversationID: conversationID,
		Content:        req.Content,
		IsFromUser:     true,
	}
	if err := uc.chatRepo.CreateMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	reply := uc.generateReply(ctx, history, req.Content)

	assistantMsg := &domain.ChatMessage{
		ConversationID: conversationID,
		Content:        reply,
		IsFromUser:     false,
	}
	if err := uc.chatRepo.CreateMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to store reply: %w", err)
	}

	return assistantMsg, nil
}

func (uc *ChatUseCase) GetMessages(ctx context.Context, conversationID int) ([]*domain.ChatMessage, error) {
	if _, err := uc.chatRepo.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}
	return uc.chatRepo.GetMessagesByConversationID(ctx, conversationID)
}

func (uc *ChatUseCase) generateReply(ctx context.Context, history []gemini.ChatTurn, userMessage string) string {
	if uc.geminiClient == nil {
		return unavailableReply
	}

	events, err := uc.eventRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Warn("failed to load events for chat context", zap.Error(err))
	}
	clubs, err := uc.clubRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Warn("failed to load clubs for chat context", zap.Error(err))
	}
	categories, err := uc.categoryRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Warn("failed to load categories for chat context", zap.Error(err))
	}

	reply, err := uc.geminiClient.GenerateChatResponse(ctx, history, userMessage, gemini.CampusData{
		Events:     events,
		Clubs:      clubs,
		Categories: categories,
	})
	if err != nil {
		uc.logger.Warn("chat generation failed", zap.Error(err))
		return unavailableReply
	}
	return reply
}

func (uc *ChatUseCase) conversationHistory(ctx context.Context, conversationID int) []gemini.ChatTurn {
	messages, err := uc.chatRepo.GetMessagesByConversationID(ctx, conversationID)
	if err != nil {
		return nil
	}

	history := make([]gemini.ChatTurn, 0, len(messages))
	for _, msg := range messages {
		role := "assistant"
		if msg.IsFromUser {
			role = "user"
		}
		history = append(history, gemini.ChatTurn{Role: role, Content: msg.Content})
	}
	return history
}
