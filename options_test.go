package sentibot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel is a simple Model implementation for testing.
type testModel string

func (m testModel) String() string     { return string(m) }
func (m testModel) Provider() Provider { return ProviderGoogle }

func TestApplyOptions(t *testing.T) {
	t.Run("returns empty options when no options provided", func(t *testing.T) {
		opts := ApplyOptions()
		assert.NotNil(t, opts)
		assert.Nil(t, opts.Model)
		assert.Zero(t, opts.MaxTokens)
		assert.Nil(t, opts.Temperature)
	})

	t.Run("applies multiple options", func(t *testing.T) {
		opts := ApplyOptions(
			WithModel(testModel("gemini-2.5-flash")),
			WithMaxTokens(256),
			WithTemperature(0.3),
		)

		assert.Equal(t, "gemini-2.5-flash", opts.Model.String())
		assert.Equal(t, 256, opts.MaxTokens)
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.3, *opts.Temperature)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		opts := ApplyOptions(WithTemperature(0.7), WithTemperature(0))
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.0, *opts.Temperature)
	})
}

func TestUsageAdd(t *testing.T) {
	total := Usage{InputTokens: 10, OutputTokens: 2}.Add(Usage{InputTokens: 5, OutputTokens: 7})
	assert.Equal(t, Usage{InputTokens: 15, OutputTokens: 9}, total)
}

func TestChatFunc(t *testing.T) {
	var got []Message
	var provider ChatProvider = ChatFunc(func(_ context.Context, messages []Message, _ ...Option) (*Response, error) {
		got = messages
		return &Response{Content: "ok"}, nil
	})

	resp, err := provider.Chat(context.Background(), []Message{UserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hi"}}, got)
}
