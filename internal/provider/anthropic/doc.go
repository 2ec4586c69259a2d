// Package anthropic adapts the Anthropic Messages API to sentibot.ChatProvider.
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//	resp, err := client.Chat(ctx, messages, sentibot.WithModel(model.ClaudeHaiku45))
package anthropic
