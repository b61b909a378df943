package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"dialogen/domain/core"
	"dialogen/internal/config"
	"dialogen/internal/errors"
)

// OpenAIClient implements ports.LLMClient over the chat completions API.
// A non-empty endpoint switches the client into Azure mode.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewOpenAIClient creates a chat completion client from LLM config.
func NewOpenAIClient(cfg config.LLMConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(errors.CodeConfig, "missing OpenAI API key")
	}

	var clientCfg openai.ClientConfig
	if cfg.Endpoint != "" {
		clientCfg = openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
		if cfg.APIVersion != "" {
			clientCfg.APIVersion = cfg.APIVersion
		}
	} else {
		clientCfg = openai.DefaultConfig(cfg.APIKey)
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Complete sends a single-user-message chat completion and returns the first
// choice's content.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: float32(c.temperature),
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		cause := core.ErrLLMCall
		if ctx.Err() == context.DeadlineExceeded {
			cause = core.ErrLLMTimeout
		}
		return "", errors.WithCode(fmt.Errorf("%w: %v", cause, err), errors.CodeLLM, "chat completion failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New(errors.CodeLLM, "chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
