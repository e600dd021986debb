package api

import (
	"fmt"
	"strings"

	"cryptodashboard/internal/domain"

	"github.com/gin-gonic/gin"
)

const maxChatMessageLength = 2000

type chatRequest struct {
	Message             string               `json:"message"`
	ConversationHistory []domain.ChatMessage `json:"conversationHistory"`
}

func (m ApiHandler) chat(c *gin.Context) {
	var requestBody chatRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	message := strings.TrimSpace(requestBody.Message)
	if message == "" {
		returnErrorJsonCode(fmt.Errorf("message must not be empty"), c, 400)
		return
	}
	if len(message) > maxChatMessageLength {
		returnErrorJsonCode(fmt.Errorf("message exceeds %d characters", maxChatMessageLength), c, 400)
		return
	}

	response, err := m.ChatService.SendMessage(c.Request.Context(), message, requestBody.ConversationHistory)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to process chat message: %w", err), c)
		return
	}

	c.JSON(200, response)
}
