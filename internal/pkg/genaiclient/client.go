package genaiclient

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"
)

const responseMIMEType = "application/json"

// New создает клиент Gemini и модель, настроенную на структурированный
// JSON-ответ. Клиент закрывает вызывающая сторона.
func New(ctx context.Context, log logger.Logger, cfg *config.AI) (*genai.Client, *genai.GenerativeModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.ResponseMIMEType = responseMIMEType

	log.With(
		logger.NewField("component", "genai-client"),
		logger.NewField("model", cfg.Model),
	).Info("genai client created")

	return client, model, nil
}
