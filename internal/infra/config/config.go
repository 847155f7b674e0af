package config

import (
	"fmt"
	"os"

	"github.com/hireline/screener-backend/internal/application/consts"
)

type providerKey struct {
	envVar     string
	consoleURL string
}

var providerKeys = map[consts.Provider]providerKey{
	consts.ProviderGroq:      {"GROQ_API_KEY", "https://console.groq.com/keys"},
	consts.ProviderOpenAI:    {"OPENAI_API_KEY", "https://platform.openai.com/api-keys"},
	consts.ProviderAnthropic: {"ANTHROPIC_API_KEY", "https://console.anthropic.com/account/keys"},
	consts.ProviderGemini:    {"GOOGLE_API_KEY", "https://makersuite.google.com/app/apikey"},
}

// ProviderAPIKey resolves the API key for a provider: explicit override first,
// then the provider's environment variable.
func ProviderAPIKey(provider consts.Provider, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	info, ok := providerKeys[provider]
	if !ok {
		return "", fmt.Errorf("unsupported provider %q, supported: groq, openai, anthropic, gemini", provider)
	}
	if key := os.Getenv(info.envVar); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("%s API key required: set %s or use --api-key (get one at %s)",
		provider, info.envVar, info.consoleURL)
}
