// Package client provides a single sentibot.ChatProvider that dispatches each
// request to the backend serving the requested model.
//
// Provider clients are created lazily the first time a model from that
// provider is used, so only the keys for providers actually in use need to be
// configured:
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{
//	        Google: os.Getenv("GOOGLE_API_KEY"),
//	        Groq:   os.Getenv("GROQ_API_KEY"),
//	    },
//	})
//
//	resp, err := c.Chat(ctx, messages, sentibot.WithModel(model.Llama3370BVersatile))
//
// Transient provider errors (rate limits, 5xx, dropped connections) are
// retried with exponential backoff. Operation events can be observed by
// passing a channel in [Config].Events; sends never block.
package client
