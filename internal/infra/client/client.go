package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hireline/screener-backend/internal/application/consts"
	"github.com/hireline/screener-backend/internal/application/interfaces"
	"github.com/hireline/screener-backend/internal/infra/client/anthropic"
	"github.com/hireline/screener-backend/internal/infra/client/gemini"
	ai "github.com/hireline/screener-backend/internal/infra/client/openai"
	"github.com/hireline/screener-backend/pkg/env"
)

// NewChatModel builds the provider client selected on the command line.
func NewChatModel(ctx context.Context, provider consts.Provider, model, apiKey string) (interfaces.ChatModel, error) {
	switch provider {
	case consts.ProviderGroq:
		return ai.NewClient(ai.NewConfig("groq", apiKey, model, ai.GroqBaseURL)), nil
	case consts.ProviderOpenAI:
		return ai.NewClient(ai.NewConfig("openai", apiKey, model, "")), nil
	case consts.ProviderAnthropic:
		maxTokens, err := strconv.Atoi(env.GetEnv("LLM_MAX_TOKENS", "4096"))
		if err != nil {
			maxTokens = 4096
		}
		return anthropic.NewClient(apiKey, model, env.GetEnv("ANTHROPIC_BASE_URL", ""), maxTokens), nil
	case consts.ProviderGemini:
		return gemini.NewClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider %q, supported: groq, openai, anthropic, gemini", provider)
	}
}

// CleanJSON strips markdown code fences some models wrap around JSON output.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
