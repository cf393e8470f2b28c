package utils

import (
	"fmt"
	"strings"

	"context"

	"github.com/pgvector/pgvector-go"
)

// PlannerClientInterface is the LLM boundary: one JSON-only generation call
// plus embeddings for destination similarity search.
type PlannerClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewPlannerClient builds a client for the configured provider.
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiPlannerClient(apiKey, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// CleanJSONResponse strips markdown fences and any prose surrounding the
// outermost JSON object. Providers occasionally wrap JSON even when asked
// not to.
func CleanJSONResponse(content string) string {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}
