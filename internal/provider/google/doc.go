// Package google adapts the Gemini API (google.golang.org/genai) to
// sentibot.ChatProvider.
package google
