// Package assistant wraps the OpenAI chat-completion API behind the
// narrow interface the assistant service consumes.
package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel = openai.GPT4oMini

	completionTemperature = 0.7
	completionMaxTokens   = 500

	maxRetries     = 2
	maxElapsedTime = 25 * time.Second
)

var errEmptyCompletion = errors.New("completion returned no choices")

type Client struct {
	client *openai.Client
	model  string
	logger zerolog.Logger
}

func NewClient(apiKey string, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: log.With().Str("component", "openai_client").Logger(),
	}
}

// Complete sends one system+user exchange and returns the model's reply.
// Transient failures are retried with exponential backoff before the
// caller falls back to canned responses.
func (c *Client) Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	var content string

	operation := func() error {
		response, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userMessage},
			},
			Temperature: completionTemperature,
			MaxTokens:   completionMaxTokens,
		})
		if err != nil {
			c.logger.Warn().Err(err).Msg("chat completion attempt failed")
			return err
		}
		if len(response.Choices) == 0 {
			return backoff.Permanent(errEmptyCompletion)
		}
		content = response.Choices[0].Message.Content
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsedTime
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx)); err != nil {
		return "", err
	}
	return content, nil
}
