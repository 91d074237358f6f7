// Package llm wraps the external chat-completion service behind a minimal
// prompt-in, text-out interface so the game logic never touches the raw API.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Defaults matching the provider settings the game was tuned against
const (
	DefaultModel       = openai.GPT3Dot5Turbo
	DefaultMaxTokens   = 150
	DefaultTemperature = 0.7
	DefaultTimeout     = 20 * time.Second
)

// ErrProvider marks any failure of the upstream completion service. Callers
// treat it as recoverable and surface it as a gateway error.
var ErrProvider = fmt.Errorf("completion provider error")

// ChatClient mirrors the subset we need from the OpenAI client for testability
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Provider turns a prompt string into a free-text completion
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIProvider implements Provider on top of the OpenAI chat completion API
type OpenAIProvider struct {
	client      ChatClient
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

// Option customizes an OpenAIProvider
type Option func(*OpenAIProvider)

// WithModel overrides the completion model
func WithModel(model string) Option {
	return func(p *OpenAIProvider) {
		p.model = model
	}
}

// WithTimeout overrides the per-call timeout
func WithTimeout(timeout time.Duration) Option {
	return func(p *OpenAIProvider) {
		p.timeout = timeout
	}
}

// NewOpenAIProvider creates a provider backed by the real OpenAI client
func NewOpenAIProvider(apiKey string, opts ...Option) *OpenAIProvider {
	return NewOpenAIProviderWithClient(openai.NewClient(apiKey), opts...)
}

// NewOpenAIProviderWithClient creates a provider from any ChatClient,
// which lets tests substitute a stub for the network client
func NewOpenAIProviderWithClient(client ChatClient, opts ...Option) *OpenAIProvider {
	p := &OpenAIProvider{
		client:      client,
		model:       DefaultModel,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
		timeout:     DefaultTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Complete sends the prompt as a single user message and returns the trimmed
// completion text. The call is bounded by the provider timeout; any transport
// failure, timeout, or empty response is reported as ErrProvider.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", ErrProvider)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: completion returned empty content", ErrProvider)
	}

	return text, nil
}
