// Package llm wraps the Gemini API for the optional parsing hint. Models are
// addressed by capability tier rather than by name so callers never hard-code
// a model string.
package llm

// ModelTier selects how capable a model a request needs.
type ModelTier string

const (
	// TierLite covers classification and other cheap lookups.
	TierLite ModelTier = "lite"
	// TierStandard covers structured extraction over a full resume.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers long-document reasoning.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultGeminiConfig returns the tier mapping for the Gemini 2.5 family.
func DefaultGeminiConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// ModelFor resolves a tier to a model name. Unknown tiers fall back to
// standard, then lite. Returns "" when nothing is configured.
func (c *Config) ModelFor(tier ModelTier) string {
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

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	override := &Config{Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		override.Models[k] = v
	}
	override.Models[tier] = model
	return override
}
