package model

import (
	"testing"

	ai "github.com/spetersoncode/sentibot"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCost(t *testing.T) {
	pricing := ChatPricing{
		InputPerMillion:  1.00,
		OutputPerMillion: 2.00,
	}

	t.Run("calculates cost for standard usage", func(t *testing.T) {
		usage := ai.Usage{InputTokens: 1000, OutputTokens: 500}
		// 1000/1M * $1 + 500/1M * $2 = $0.002
		assert.InDelta(t, 0.002, CalculateCost(usage, pricing), 0.0001)
	})

	t.Run("returns zero for zero usage", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateCost(ai.Usage{}, pricing))
	})
}

func TestChatModel_Cost(t *testing.T) {
	usage := ai.Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	assert.InDelta(t, 1.38, Llama3370BVersatile.Cost(usage), 0.0001)

	unknown := New(ai.ProviderGroq, "some-new-model")
	assert.False(t, unknown.Pricing().Known())
	assert.Equal(t, 0.0, unknown.Cost(usage))
}
