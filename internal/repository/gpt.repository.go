package repository

import (
	"context"
	"cryptodashboard/internal/domain"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	ChatCompletion(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

func (h gptRepositoryHandler) ChatCompletion(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	chatMessages := make([]chatgpt.ChatMessage, 0, len(messages))
	for _, message := range messages {
		chatMessages = append(chatMessages, chatgpt.ChatMessage{
			Role:    chatgpt.ChatGPTModelRole(message.Role),
			Content: message.Content,
		})
	}

	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model:       chatgpt.GPT4,
		Messages:    chatMessages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("gpt request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
