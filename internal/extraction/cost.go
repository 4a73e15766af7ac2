package extraction

import (
	"github.com/jonathan/syllabus-agent/internal/llm"
	"github.com/jonathan/syllabus-agent/internal/types"
)

// CostEstimate is a rough pre-flight price for one extraction call.
type CostEstimate struct {
	EstimatedTokens int     `json:"estimated_tokens"`
	EstimatedCost   float64 `json:"estimated_cost"`
	Tier            string  `json:"tier"`
}

// promptOverheadTokens approximates the fixed token cost of the system
// prompt and response structure.
const promptOverheadTokens = 1000

// visionFlatCost is the flat estimate for an image extraction; image tokens
// are priced differently from text and dominate the call.
const visionFlatCost = 0.01

// perTokenCost is the input price per token by tier.
var perTokenCost = map[llm.ModelTier]float64{
	llm.TierLite:     0.10 / 1_000_000,
	llm.TierStandard: 0.30 / 1_000_000,
	llm.TierVision:   0.30 / 1_000_000,
}

// EstimateCost predicts the token count and dollar cost of extracting one
// normalized document. Text is estimated at four characters per token.
func EstimateCost(content *types.NormalizedContent) CostEstimate {
	if content.Kind == types.KindImage {
		return CostEstimate{
			EstimatedTokens: promptOverheadTokens,
			EstimatedCost:   visionFlatCost,
			Tier:            string(llm.TierVision),
		}
	}

	tier := ChooseTier(content.Text)
	tokens := len(content.Text)/4 + promptOverheadTokens
	return CostEstimate{
		EstimatedTokens: tokens,
		EstimatedCost:   float64(tokens) * perTokenCost[tier],
		Tier:            string(tier),
	}
}
