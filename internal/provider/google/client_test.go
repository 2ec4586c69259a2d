package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ai "github.com/spetersoncode/sentibot"
	"github.com/spetersoncode/sentibot/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestChat(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody)) {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "negative"}, {"text": " - moderate"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 40, "candidatesTokenCount": 5}
		}`))
	}))
	defer srv.Close()

	c, err := New(context.Background(), "test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	resp, err := c.Chat(context.Background(),
		[]ai.Message{ai.UserMessage("Analyze this")},
		ai.WithModel(model.Gemini25Pro),
		ai.WithTemperature(0),
	)
	require.NoError(t, err)

	assert.Equal(t, "negative - moderate", resp.Content)
	assert.Equal(t, "STOP", resp.FinishReason)
	assert.Equal(t, ai.Usage{InputTokens: 40, OutputTokens: 5}, resp.Usage)
	assert.True(t, strings.HasSuffix(gotPath, "/models/gemini-2.5-pro:generateContent"), gotPath)

	generationConfig, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from request")
	assert.Equal(t, 0.0, generationConfig["temperature"])
}

func TestConvertMessages(t *testing.T) {
	contents, system := convertMessages([]ai.Message{
		{Role: ai.RoleSystem, Content: "Respond helpfully."},
		ai.UserMessage("hello"),
		{Role: ai.RoleAssistant, Content: "hi there"},
		{Role: ai.RoleUser, Content: ""},
	})

	require.NotNil(t, system)
	require.Len(t, system.Parts, 1)
	assert.Equal(t, "Respond helpfully.", system.Parts[0].Text)

	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
}

func TestConvertMessagesWithoutSystem(t *testing.T) {
	_, system := convertMessages([]ai.Message{ai.UserMessage("hello")})
	assert.Nil(t, system)
}

func TestWrapError(t *testing.T) {
	t.Run("api error is categorized", func(t *testing.T) {
		err := wrapError(fmt.Errorf("generate: %w", genai.APIError{Code: 503, Message: "overloaded"}))

		var apiErr *ai.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, ai.ProviderGoogle, apiErr.Provider)
		assert.Equal(t, 503, apiErr.StatusCode())
		assert.Equal(t, ai.ErrorTransient, apiErr.Category())
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("dial tcp: no route")
		assert.Equal(t, plain, wrapError(plain))
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, wrapError(nil))
	})
}

func TestBlockedError(t *testing.T) {
	err := &BlockedError{Reason: "SAFETY"}
	assert.Equal(t, "gemini blocked the prompt: SAFETY", err.Error())
}
