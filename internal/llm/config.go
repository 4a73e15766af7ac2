// Package llm provides the Gemini client abstraction used by the extraction
// orchestrator. The client is an explicit handle constructed by the caller
// and threaded through; there is no package-level default.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite handles short, simply structured syllabi.
	TierLite ModelTier = "lite"
	// TierStandard handles typical text extraction.
	TierStandard ModelTier = "standard"
	// TierVision handles scanned or photographed syllabi. Higher per-call
	// cost than the text tiers.
	TierVision ModelTier = "vision"
)

// Config holds the model configuration for the application.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierVision:   "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard and
// then lite when the tier is unconfigured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	cfg := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		cfg.Models[k] = v
	}
	cfg.Models[tier] = model
	return cfg
}
