package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campusconnect-backend/internal/usecase/chat"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// StartConversation handles POST /api/chat/conversations
// @Summary Start a new assistant conversation
// @Tags chat
// @Accept json
// @Produce json
// @Param request body chat.StartConversationRequest true "Conversation data"
// @Success 201 {object} domain.ChatConversation
// @Failure 400 {object} ErrorResponse
// @Router /api/chat/conversations [post]
func (h *ChatHandler) StartConversation(c *gin.Context) {
	var req chat.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	conversation, err := h.chatUseCase.StartConversation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to create conversation")
		return
	}
	c.JSON(http.StatusCreated, conversation)
}

// SendMessage handles POST /api/chat/conversations/:id/messages
// @Summary Send a message to the campus assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param id path int true "Conversation ID"
// @Param request body chat.MessageRequest true "Message data"
// @Success 201 {object} domain.ChatMessage
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/chat/conversations/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req chat.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	reply, err := h.chatUseCase.SendMessage(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "failed to send message")
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// GetMessages handles GET /api/chat/conversations/:id/messages
// @Summary List conversation messages
// @Tags chat
// @Produce json
// @Param id path int true "Conversation ID"
// @Success 200 {array} domain.ChatMessage
// @Failure 404 {object} ErrorResponse
// @Router /api/chat/conversations/{id}/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	messages, err := h.chatUseCase.GetMessages(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}
