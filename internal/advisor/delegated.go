package advisor

import (
	"context"
	"errors"
	"log/slog"

	"outing-advisor/internal/providers/anthropic"
	"outing-advisor/internal/types"
)

// Fixed decoding parameters for the reasoning call.
const (
	reasoningTemperature = 0.5
	reasoningTopP        = 0.9
)

// FallbackNarrative is returned whenever the reasoning service fails.
// It must stay user-safe: the already-fetched weather and travel facts
// are still delivered alongside it.
const FallbackNarrative = "The automated outing analysis is unavailable right now. " +
	"Please review the weather and travel information above and use your own judgment."

// ReasoningClient defines the interface for reasoning-service providers
type ReasoningClient interface {
	SendMessage(ctx context.Context, req *anthropic.MessageRequest) (*anthropic.MessageResponse, error)
}

// DelegatedEngine forwards the retrieved facts to an external reasoning
// service as a single user-role message and uses the first text block of
// the response as the narrative.
//
// A failed call never propagates as a pipeline-fatal error: Recommend
// always returns the fallback narrative alongside a typed error
// (*types.AuthenticationError or *types.ReasoningServiceError) so the
// caller can report what happened without losing the rest of the result.
type DelegatedEngine struct {
	client    ReasoningClient
	model     string
	maxTokens int
	logger    *slog.Logger
}

func NewDelegatedEngine(client ReasoningClient, model string, maxTokens int, logger *slog.Logger) *DelegatedEngine {
	return &DelegatedEngine{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		logger:    logger.With("component", "delegated-engine"),
	}
}

func (e *DelegatedEngine) Recommend(ctx context.Context, input Input) (types.Recommendation, error) {
	temperature := reasoningTemperature
	topP := reasoningTopP

	req := &anthropic.MessageRequest{
		Model: e.model,
		Messages: []anthropic.Message{
			{Role: "user", Content: buildPrompt(input)},
		},
		MaxTokens:   e.maxTokens,
		Temperature: &temperature,
		TopP:        &topP,
	}

	resp, err := e.client.SendMessage(ctx, req)
	if err != nil {
		var authErr *types.AuthenticationError
		if errors.As(err, &authErr) {
			e.logger.Warn("reasoning service rejected credentials", "error", err)
			return types.Recommendation{NarrativeText: FallbackNarrative}, authErr
		}
		e.logger.Warn("reasoning service call failed", "error", err)
		return types.Recommendation{NarrativeText: FallbackNarrative}, &types.ReasoningServiceError{Err: err}
	}

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			return types.Recommendation{NarrativeText: block.Text}, nil
		}
	}

	e.logger.Warn("reasoning service returned no text content", "model", resp.Model, "stop_reason", resp.StopReason)
	return types.Recommendation{NarrativeText: FallbackNarrative},
		&types.ReasoningServiceError{Err: errors.New("response contains no text content block")}
}
