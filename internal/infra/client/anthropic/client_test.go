package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Complete_Sends_Message_And_Joins_Text_Blocks(t *testing.T) {
	var gotReq messageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/messages", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))
		require.Equal(t, apiVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [{"type": "text", "text": "{\"a\": "}, {"type": "text", "text": "1}"}], "stop_reason": "end_turn"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "claude-sonnet-4-20250514", srv.URL, 1024)
	out, err := c.Complete(context.Background(), "extract this resume")
	require.NoError(t, err)
	require.Equal(t, `{"a": 1}`, out)

	require.Equal(t, "claude-sonnet-4-20250514", gotReq.Model)
	require.Equal(t, 1024, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	require.Equal(t, "user", gotReq.Messages[0].Role)
	require.Equal(t, "extract this resume", gotReq.Messages[0].Content)
}

func Test_Complete_Surfaces_Rate_Limit_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "slow down"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "claude-sonnet-4-20250514", srv.URL, 1024)
	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func Test_Complete_Fails_On_Empty_Content(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": [], "stop_reason": "end_turn"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "claude-sonnet-4-20250514", srv.URL, 1024)
	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no text content")
}
