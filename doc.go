// Package sentibot provides the shared types for a sentiment-aware chatbot
// that routes each user turn to one of several hosted LLM backends.
//
// The root package defines the provider-neutral vocabulary used by every
// other package:
//
//   - [ChatProvider]: send a conversation, receive a complete response
//   - [Message], [Response], [Usage]: conversation and reply data
//   - [Option]: per-request model, temperature, and token settings
//   - [Error]: provider errors categorized for retry decisions
//
// A single turn flows through the packages like this:
//
//	crisis.Detect(text)             // static keyword gate
//	sentiment.Classifier.Classify   // one low-temperature model call
//	router.Router.Respond           // pick a prompt/model pair and generate
//	chat.Loop.Run                   // stdin/stdout REPL around the router
//
// Provider access goes through [github.com/spetersoncode/sentibot/client],
// and model references through [github.com/spetersoncode/sentibot/model]:
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{Google: os.Getenv("GOOGLE_API_KEY")},
//	})
//	resp, err := c.Chat(ctx, []sentibot.Message{
//	    {Role: sentibot.RoleUser, Content: "Hello"},
//	}, sentibot.WithModel(model.Gemini25Flash), sentibot.WithTemperature(0.3))
package sentibot
