package google

import (
	ai "github.com/spetersoncode/sentibot"
	"google.golang.org/genai"
)

// convertMessages splits a conversation into Gemini contents and an optional
// system instruction. Gemini calls the assistant role "model".
func convertMessages(messages []ai.Message) ([]*genai.Content, *genai.Content) {
	var contents []*genai.Content
	var systemParts []*genai.Part

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		part := &genai.Part{Text: msg.Content}

		switch msg.Role {
		case ai.RoleSystem:
			systemParts = append(systemParts, part)
		case ai.RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{part}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{part}})
		}
	}

	var system *genai.Content
	if len(systemParts) > 0 {
		system = &genai.Content{Parts: systemParts}
	}
	return contents, system
}
