// Package llm wraps the hosted chat-completion API behind a small interface.
// One call per logical request, fixed decoding parameters, no hidden retries:
// retry policy is a separate decorator the caller opts into.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ronojoykumar/travel-itinerary-app/internal/prompt"
)

// ErrNotConfigured is returned when no API key is available. Handlers map it
// to a 503 instead of a generic failure.
var ErrNotConfigured = errors.New("model API key is not configured")

// Message is one prior conversation turn for the chat endpoint.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer issues model calls. Implementations return the raw text content
// or a transport-level failure; shape problems in the text are the caller's
// concern.
type Completer interface {
	Complete(ctx context.Context, p prompt.Prompt) (string, error)
	Chat(ctx context.Context, p prompt.Prompt, history []Message) (string, error)
}

// maxHistoryTurns bounds how much conversation is replayed per chat call.
const maxHistoryTurns = 20

// Disabled is the Completer wired when no API key is configured. Every call
// fails with ErrNotConfigured so generation endpoints degrade uniformly while
// the rest of the service keeps running.
type Disabled struct{}

func (Disabled) Complete(context.Context, prompt.Prompt) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Chat(context.Context, prompt.Prompt, []Message) (string, error) {
	return "", ErrNotConfigured
}

// OpenAI is the production Completer backed by the OpenAI chat completions API.
type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI builds the client. The key is required; the model name defaults
// to gpt-4o when empty.
func NewOpenAI(apiKey, model string) (*OpenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = string(openai.ChatModelGPT4o)
	}
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Complete issues exactly one completion call for a single-shot prompt.
func (o *OpenAI) Complete(ctx context.Context, p prompt.Prompt) (string, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(p.System),
		openai.UserMessage(p.User),
	}
	return o.create(ctx, p, msgs)
}

// Chat issues one completion call with the system prompt plus the most recent
// conversation turns.
func (o *OpenAI) Chat(ctx context.Context, p prompt.Prompt, history []Message) (string, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(p.System),
	}
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, m := range history {
		if m.Content == "" {
			continue
		}
		switch m.Role {
		case "user":
			msgs = append(msgs, openai.UserMessage(m.Content))
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		}
	}
	return o.create(ctx, p, msgs)
}

func (o *OpenAI) create(ctx context.Context, p prompt.Prompt, msgs []openai.ChatCompletionMessageParamUnion) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: msgs,
	}
	if p.Temperature > 0 {
		params.Temperature = openai.Float(p.Temperature)
	}
	if p.MaxTokens > 0 {
		params.MaxTokens = openai.Int(p.MaxTokens)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("model returned an empty message")
	}
	return content, nil
}
