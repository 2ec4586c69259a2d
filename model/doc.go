// Package model provides chat model references for every supported provider.
//
// Models know their provider, which lets the client pick the right backend
// from the model alone:
//
//	resp, err := c.Chat(ctx, messages, sentibot.WithModel(model.Llama3370BVersatile))
//
// Configuration refers to models as "provider:model-id" strings; [Parse]
// turns those into a [ChatModel], attaching known pricing when the model is
// in the catalog:
//
//	m, err := model.Parse("google:gemini-2.5-pro")
//
// Pricing is used only for cost estimates in logs:
//
//	cost := m.Cost(resp.Usage)
package model
