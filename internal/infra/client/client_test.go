package client

import (
	"context"
	"testing"

	"github.com/hireline/screener-backend/internal/application/consts"
	"github.com/stretchr/testify/require"
)

func Test_CleanJSON_Strips_Json_Fence(t *testing.T) {
	input := "```json\n{\"candidate_name\": \"Ann\"}\n```"
	require.Equal(t, `{"candidate_name": "Ann"}`, CleanJSON(input))
}

func Test_CleanJSON_Strips_Bare_Fence(t *testing.T) {
	input := "```\r\n{\"a\": 1}\r\n```"
	require.Equal(t, `{"a": 1}`, CleanJSON(input))
}

func Test_CleanJSON_Leaves_Plain_JSON_Alone(t *testing.T) {
	input := `  {"a": 1}  `
	require.Equal(t, `{"a": 1}`, CleanJSON(input))
}

func Test_CleanJSON_Handles_Empty_Input(t *testing.T) {
	require.Equal(t, "", CleanJSON("  \n "))
}

func Test_NewChatModel_Rejects_Unknown_Provider(t *testing.T) {
	_, err := NewChatModel(context.Background(), consts.Provider("mistral"), "some-model", "key")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported provider")
}

func Test_NewChatModel_Builds_Groq_Client(t *testing.T) {
	model, err := NewChatModel(context.Background(), consts.ProviderGroq, consts.DefaultModel, "key")
	require.NoError(t, err)
	require.Equal(t, "groq/"+consts.DefaultModel, model.Name())
}

func Test_NewChatModel_Builds_Anthropic_Client(t *testing.T) {
	model, err := NewChatModel(context.Background(), consts.ProviderAnthropic, "claude-sonnet-4-20250514", "key")
	require.NoError(t, err)
	require.Equal(t, "anthropic/claude-sonnet-4-20250514", model.Name())
}
