package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ai "github.com/spetersoncode/sentibot"
	"github.com/spetersoncode/sentibot/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string   `json:"model"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
	System      []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role string `json:"role"`
	} `json:"messages"`
}

func TestChat(t *testing.T) {
	var got capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&got)) {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-haiku-4-5",
			"content": [{"type": "text", "text": "I'm sorry you're dealing with that."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 20, "output_tokens": 9}
		}`))
	}))
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	resp, err := c.Chat(context.Background(),
		[]ai.Message{
			{Role: ai.RoleSystem, Content: "Be supportive."},
			ai.UserMessage("My laptop broke"),
		},
		ai.WithModel(model.ClaudeHaiku45),
		ai.WithTemperature(0.5),
	)
	require.NoError(t, err)

	assert.Equal(t, "I'm sorry you're dealing with that.", resp.Content)
	assert.Equal(t, "end_turn", resp.FinishReason)
	assert.Equal(t, ai.Usage{InputTokens: 20, OutputTokens: 9}, resp.Usage)

	assert.Equal(t, "claude-haiku-4-5", got.Model)
	assert.Equal(t, defaultMaxTokens, got.MaxTokens)
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.5, *got.Temperature)
	require.Len(t, got.System, 1)
	assert.Equal(t, "Be supportive.", got.System[0].Text)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestChatCategorizesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`))
	}))
	defer srv.Close()

	c := New("bad-key", WithBaseURL(srv.URL))
	_, err := c.Chat(context.Background(), []ai.Message{ai.UserMessage("hi")})
	require.Error(t, err)

	cat, _ := ai.CategoryOf(err)
	assert.Equal(t, ai.ErrorPermanent, cat)
	assert.Equal(t, 401, ai.StatusCodeOf(err))
}

func TestRetryAfter(t *testing.T) {
	assert.Zero(t, retryAfter(nil))
	resp := &http.Response{Header: http.Header{"Retry-After": []string{"4"}}}
	assert.Equal(t, 4*time.Second, retryAfter(resp))
}

func TestConvertMessages(t *testing.T) {
	msgs, system := convertMessages([]ai.Message{
		{Role: ai.RoleSystem, Content: ""},
		ai.UserMessage("hello"),
		{Role: ai.RoleAssistant, Content: "hi"},
	})
	assert.Empty(t, system)
	assert.Len(t, msgs, 2)
}
