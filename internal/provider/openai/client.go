package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/sentibot"
)

// GroqBaseURL is Groq's OpenAI-compatible endpoint.
const GroqBaseURL = "https://api.groq.com/openai/v1/"

// DefaultModel is used when a request does not name a model.
const DefaultModel = "gpt-5-mini"

// Client wraps the OpenAI SDK to implement ai.ChatProvider.
type Client struct {
	client   *openai.Client
	provider ai.Provider
	model    string
}

type settings struct {
	provider ai.Provider
	model    string
	baseURL  string
}

// ClientOption configures the OpenAI client.
type ClientOption func(*settings)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(s *settings) {
		s.model = model
	}
}

// WithBaseURL points the client at an alternative OpenAI-compatible endpoint.
func WithBaseURL(url string) ClientOption {
	return func(s *settings) {
		s.baseURL = url
	}
}

// WithProvider sets the provider name reported in errors.
func WithProvider(p ai.Provider) ClientOption {
	return func(s *settings) {
		s.provider = p
	}
}

// New creates a new OpenAI client with the given API key.
// SDK-level retries are disabled; retrying is the caller's job.
func New(apiKey string, opts ...ClientOption) *Client {
	s := settings{provider: ai.ProviderOpenAI, model: DefaultModel}
	for _, opt := range opts {
		opt(&s)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if s.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(s.baseURL))
	}

	client := openai.NewClient(reqOpts...)
	return &Client{
		client:   &client,
		provider: s.provider,
		model:    s.model,
	}
}

// NewGroq creates a client for Groq's OpenAI-compatible API.
func NewGroq(apiKey string, opts ...ClientOption) *Client {
	opts = append([]ClientOption{
		WithBaseURL(GroqBaseURL),
		WithProvider(ai.ProviderGroq),
		WithModel("llama-3.3-70b-versatile"),
	}, opts...)
	return New(apiKey, opts...)
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != nil {
		model = options.Model.String()
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(messages),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(c.provider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, ai.ErrEmptyResponse
	}

	return &ai.Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
