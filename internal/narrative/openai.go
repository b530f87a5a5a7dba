package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/wanderplan/trip-planner/backend/internal/domain"
)

// systemPrompt constrains the model to rephrasing: the paragraph may only
// restate facts present in the digest JSON.
const systemPrompt = "You rewrite a day of a travel itinerary as one flowing paragraph of plain text. " +
	"Use only the facts in the JSON the user provides: stop names, times, durations, activities, " +
	"nearby options, food options, and tips. Do not invent places, prices, opening hours, or any " +
	"other detail. No markdown, no lists, no preamble."

// Config holds the settings for the OpenAI-backed rewriter.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// ChatRewriter rewrites a day's digest through an eino chat model with a
// bounded wait.
type ChatRewriter struct {
	model   model.BaseChatModel
	timeout time.Duration
}

// NewOpenAIRewriter builds a Rewriter from config. With no API key the
// feature is off and the Disabled rewriter is returned; a model construction
// failure is likewise downgraded to Disabled so startup never depends on the
// external service.
func NewOpenAIRewriter(ctx context.Context, cfg Config) Rewriter {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return Disabled{}
	}
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return Disabled{}
	}
	return NewChatRewriter(cm, cfg.Timeout)
}

// NewChatRewriter wraps an already-built chat model. Tests inject a mock
// model here.
func NewChatRewriter(cm model.BaseChatModel, timeout time.Duration) *ChatRewriter {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &ChatRewriter{model: cm, timeout: timeout}
}

// RewriteDay sends the digest to the model and returns its paragraph.
// Any failure — marshal, timeout, transport, empty content — is reported as
// domain.ErrUnavailable; the generation pipeline never sees the raw cause
// as a fatal error.
func (r *ChatRewriter) RewriteDay(ctx context.Context, day DayDigest) (string, error) {
	payload, err := json.Marshal(day)
	if err != nil {
		return "", fmt.Errorf("narrative.ChatRewriter: encode digest: %w", domain.ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	msg, err := r.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(string(payload)),
	})
	if err != nil {
		return "", fmt.Errorf("narrative.ChatRewriter: generate: %w", domain.ErrUnavailable)
	}

	text := strings.TrimSpace(msg.Content)
	if text == "" {
		return "", fmt.Errorf("narrative.ChatRewriter: empty response: %w", domain.ErrUnavailable)
	}
	return text, nil
}
