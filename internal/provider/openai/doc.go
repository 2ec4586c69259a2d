// Package openai adapts the OpenAI chat completions API to sentibot.ChatProvider.
//
// The same adapter serves Groq, whose API is OpenAI-compatible; construct it
// with [WithBaseURL] pointing at [GroqBaseURL] and [WithProvider] set to
// sentibot.ProviderGroq so errors are attributed correctly.
package openai
