// internal/infrastructure/llm/gemini/client.go
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/suggestion"
)

var errEmptyResponse = errors.New("empty response from model")

// Client generates JSON answers with the Gemini API
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *logrus.Logger
}

// NewClient creates a Gemini client from the suggestion configuration
func NewClient(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.Suggestion.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.Suggestion.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.Suggestion.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	logger.WithField("model", cfg.Suggestion.Model).Info("Gemini client ready")

	return &Client{
		client:      client,
		model:       cfg.Suggestion.Model,
		temperature: float32(cfg.Suggestion.Temperature),
		logger:      logger,
	}, nil
}

// Generate sends the prompt and returns the text of the first candidate
func (c *Client) Generate(ctx context.Context, prompt suggestion.Prompt) (string, error) {
	temperature := c.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   prompt.Schema,
	}
	if prompt.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt.Text), genConfig)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	if resp.UsageMetadata != nil {
		c.logger.WithFields(logrus.Fields{
			"model":         c.model,
			"prompt_tokens": resp.UsageMetadata.PromptTokenCount,
			"output_tokens": resp.UsageMetadata.CandidatesTokenCount,
		}).Debug("Gemini usage")
	}

	text := resp.Text()
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}
