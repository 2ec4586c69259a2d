package sentibot

// Provider identifies an AI provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
	// ProviderGroq is served through Groq's OpenAI-compatible endpoint.
	ProviderGroq Provider = "groq"
)

// Providers lists every supported provider in display order.
func Providers() []Provider {
	return []Provider{ProviderGoogle, ProviderGroq, ProviderOpenAI, ProviderAnthropic}
}

// Model identifies a chat model and the provider that serves it.
type Model interface {
	// String returns the API identifier sent to the provider.
	String() string
	// Provider returns which provider serves this model.
	Provider() Provider
}
