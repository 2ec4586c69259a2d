package model

import (
	"fmt"
	"strings"

	ai "github.com/spetersoncode/sentibot"
)

// ChatModel represents a chat/completion model from any provider.
type ChatModel struct {
	id       string
	provider ai.Provider
	pricing  ChatPricing
}

// New returns a model reference for an arbitrary model ID.
// Catalog pricing is attached when the ID is known for that provider.
func New(provider ai.Provider, id string) ChatModel {
	if known, ok := lookup(provider, id); ok {
		return known
	}
	return ChatModel{id: id, provider: provider}
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ChatModel) Provider() ai.Provider { return m.provider }

// Pricing returns the pricing for this model.
func (m ChatModel) Pricing() ChatPricing { return m.pricing }

// Ref returns the "provider:model-id" form accepted by Parse.
func (m ChatModel) Ref() string { return m.provider.String() + ":" + m.id }

// Google Gemini Models
var (
	Gemini25Pro       = ChatModel{id: "gemini-2.5-pro", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00}}
	Gemini25Flash     = ChatModel{id: "gemini-2.5-flash", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.30, OutputPerMillion: 2.50}}
	Gemini25FlashLite = ChatModel{id: "gemini-2.5-flash-lite", provider: ai.ProviderGoogle, pricing: ChatPricing{InputPerMillion: 0.10, OutputPerMillion: 0.40}}
)

// Groq-hosted open models
var (
	Llama3370BVersatile = ChatModel{id: "llama-3.3-70b-versatile", provider: ai.ProviderGroq, pricing: ChatPricing{InputPerMillion: 0.59, OutputPerMillion: 0.79}}
	Llama318BInstant    = ChatModel{id: "llama-3.1-8b-instant", provider: ai.ProviderGroq, pricing: ChatPricing{InputPerMillion: 0.05, OutputPerMillion: 0.08}}
)

// OpenAI GPT Models
var (
	GPT5     = ChatModel{id: "gpt-5", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00}}
	GPT5Mini = ChatModel{id: "gpt-5-mini", provider: ai.ProviderOpenAI, pricing: ChatPricing{InputPerMillion: 0.25, OutputPerMillion: 2.00}}
)

// Anthropic Claude Models
var (
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: ai.ProviderAnthropic, pricing: ChatPricing{InputPerMillion: 1.00, OutputPerMillion: 5.00}}
)

var catalog = []ChatModel{
	Gemini25Pro, Gemini25Flash, Gemini25FlashLite,
	Llama3370BVersatile, Llama318BInstant,
	GPT5, GPT5Mini,
	ClaudeSonnet45, ClaudeHaiku45,
}

// Catalog returns the known chat models.
func Catalog() []ChatModel {
	out := make([]ChatModel, len(catalog))
	copy(out, catalog)
	return out
}

func lookup(provider ai.Provider, id string) (ChatModel, bool) {
	for _, m := range catalog {
		if m.provider == provider && m.id == id {
			return m, true
		}
	}
	return ChatModel{}, false
}

// ErrUnknownProvider is returned by Parse for a provider prefix that is not supported.
type ErrUnknownProvider struct {
	Provider string
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown provider %q (must be google, groq, openai, or anthropic)", e.Provider)
}

// Parse converts a "provider:model-id" reference into a ChatModel.
func Parse(ref string) (ChatModel, error) {
	providerName, id, ok := strings.Cut(strings.TrimSpace(ref), ":")
	if !ok || id == "" {
		return ChatModel{}, fmt.Errorf("invalid model reference %q: want provider:model-id", ref)
	}

	provider := ai.Provider(strings.ToLower(strings.TrimSpace(providerName)))
	for _, p := range ai.Providers() {
		if p == provider {
			return New(provider, strings.TrimSpace(id)), nil
		}
	}
	return ChatModel{}, &ErrUnknownProvider{Provider: providerName}
}

var _ ai.Model = ChatModel{}
