package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	ai "github.com/spetersoncode/sentibot"
)

// DefaultModel is used when a request does not name a model.
const DefaultModel = "claude-sonnet-4-5"

// defaultMaxTokens is sent when the caller sets no limit; the API requires one.
const defaultMaxTokens = 1024

// Client wraps the Anthropic SDK to implement ai.ChatProvider.
type Client struct {
	client *anthropic.Client
	model  string
}

type settings struct {
	model   string
	baseURL string
}

// ClientOption configures the Anthropic client.
type ClientOption func(*settings)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(s *settings) {
		s.model = model
	}
}

// WithBaseURL overrides the Anthropic API endpoint.
func WithBaseURL(url string) ClientOption {
	return func(s *settings) {
		s.baseURL = url
	}
}

// New creates a new Anthropic client with the given API key.
// SDK-level retries are disabled; retrying is the caller's job.
func New(apiKey string, opts ...ClientOption) *Client {
	s := settings{model: DefaultModel}
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

	client := anthropic.NewClient(reqOpts...)
	return &Client{client: &client, model: s.model}
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != nil {
		model = options.Model.String()
	}

	maxTokens := int64(defaultMaxTokens)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	msgs, system := convertMessages(messages)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return &ai.Response{
		Content:      content.String(),
		FinishReason: string(resp.StopReason),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
