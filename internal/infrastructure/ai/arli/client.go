// Package arli provides an ArliAI chat-completions client used for
// recipe generation. The API speaks the OpenAI chat format.
package arli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pantryloom/v1/internal/ports/outbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"go.uber.org/zap"
)

// Config holds the client configuration
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client implements the ChatCompletionClient interface
type Client struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a new ArliAI client
func NewClient(cfg Config, logger *zap.Logger) outbound.ChatCompletionClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.arliai.com"
	}
	if cfg.Model == "" {
		cfg.Model = "Mistral-Nemo-12B-Instruct-2407"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	logger.Info("ArliAI client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout))

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("arli-client"),
	}
}

// Chat API structures
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model             string        `json:"model"`
	Messages          []ChatMessage `json:"messages"`
	RepetitionPenalty float64       `json:"repetition_penalty"`
	Temperature       float64       `json:"temperature"`
	TopP              float64       `json:"top_p"`
	TopK              int           `json:"top_k"`
	MaxTokens         int           `json:"max_tokens"`
	Stream            bool          `json:"stream"`
}

type ChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a system and user prompt and returns the assistant's
// reply. Decoding parameters are fixed: recipe generation wants mild
// creativity without drifting from the catalog vocabulary.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := ChatRequest{
		Model: c.cfg.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		RepetitionPenalty: 1.1,
		Temperature:       0.7,
		TopP:              0.9,
		TopK:              40,
		MaxTokens:         1024,
		Stream:            false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.NewExternalServiceError("ArliAI", err)
	}

	url := c.cfg.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.NewExternalServiceError("ArliAI", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperrors.NewExternalServiceError("ArliAI", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewExternalServiceError("ArliAI", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("ArliAI request failed",
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)))
		return "", apperrors.NewExternalServiceError("ArliAI",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", apperrors.NewExternalServiceError("ArliAI", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", apperrors.NewExternalServiceError("ArliAI",
			fmt.Errorf("response contained no choices"))
	}

	c.logger.Debug("ArliAI request completed",
		zap.Duration("elapsed", time.Since(start)))
	return chatResp.Choices[0].Message.Content, nil
}
