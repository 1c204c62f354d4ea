package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-mate/internal/config"
	"github.com/MKhiriev/go-study-mate/internal/logger"
	"github.com/MKhiriev/go-study-mate/internal/utils"
	"github.com/MKhiriev/go-study-mate/models"
)

const chatCompletionsPath = "/chat/completions"

type completionRequestBody struct {
	Model          string                     `json:"model"`
	Messages       []models.CompletionMessage `json:"messages"`
	Temperature    *float64                   `json:"temperature,omitempty"`
	ResponseFormat *responseFormat            `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponseBody struct {
	Choices []struct {
		Message models.CompletionMessage `json:"message"`
	} `json:"choices"`
}

// groqCompletionClient implements [CompletionClient] against an
// OpenAI-compatible POST /chat/completions endpoint.
type groqCompletionClient struct {
	client *utils.HTTPClient
	model  string

	logger *logger.Logger
}

// NewCompletionClient constructs a [CompletionClient] from cfg. The API key
// is sent as a bearer token on every request; requests without a model use
// cfg.Model.
//
// Returns [ErrAPIKeyNotProvided] when cfg.APIKey is empty and
// [ErrInvalidBaseURL] when cfg.BaseURL cannot be parsed.
func NewCompletionClient(cfg config.AI, logger *logger.Logger) (CompletionClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAPIKeyNotProvided
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &groqCompletionClient{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Complete implements [CompletionClient]. It performs a single request with
// no retries; ctx cancellation and the client timeout both abort it.
func (c *groqCompletionClient) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	log := logger.FromContext(ctx)

	body := completionRequestBody{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
	}
	if body.Model == "" {
		body.Model = c.model
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var result completionResponseBody
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Str("func", "*groqCompletionClient.Complete").Msg("completion request failed")
		return "", fmt.Errorf("completion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "*groqCompletionClient.Complete").
			Int("status", resp.StatusCode()).
			Msg("completion api returned an error")
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	log.Debug().
		Str("func", "*groqCompletionClient.Complete").
		Str("model", body.Model).
		Dur("took", resp.Time()).
		Msg("completion received")

	return result.Choices[0].Message.Content, nil
}
