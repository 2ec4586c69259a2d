package model

import ai "github.com/spetersoncode/sentibot"

// ChatPricing contains pricing per million tokens (USD) for chat models.
// A zero value means pricing is unknown.
type ChatPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// Known returns true if pricing information is available.
func (p ChatPricing) Known() bool {
	return p.InputPerMillion > 0 || p.OutputPerMillion > 0
}

// CalculateCost returns the estimated USD cost of a request.
func CalculateCost(usage ai.Usage, pricing ChatPricing) float64 {
	return float64(usage.InputTokens)/1_000_000*pricing.InputPerMillion +
		float64(usage.OutputTokens)/1_000_000*pricing.OutputPerMillion
}

// Cost returns the estimated USD cost of a request made with this model.
func (m ChatModel) Cost(usage ai.Usage) float64 {
	return CalculateCost(usage, m.pricing)
}
