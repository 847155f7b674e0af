package ai

import (
	"strconv"

	"github.com/hireline/screener-backend/pkg/env"
)

// GroqBaseURL points the OpenAI-compatible client at Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

type Config struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int64
}

func NewConfig(provider, apiKey, model, baseURL string) Config {
	maxTokens, err := strconv.Atoi(env.GetEnv("LLM_MAX_TOKENS", "4096"))
	if err != nil {
		maxTokens = 4096
	}
	return Config{
		Provider:  provider,
		APIKey:    apiKey,
		Model:     model,
		BaseURL:   baseURL,
		MaxTokens: int64(maxTokens),
	}
}
