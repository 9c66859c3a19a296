package handlers

import (
	"log"
	"net/http"
	"strings"

	"chatbot-backend/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles HTTP requests for the chat endpoint
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents the request body for a chat message
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	result, err := h.chatService.Resolve(c.Request.Context(), service.ChatRequest{
		Message: req.Message,
	})
	if err != nil {
		log.Printf("Failed to resolve chat message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not resolve message"})
		return
	}

	c.JSON(http.StatusOK, result)
}
