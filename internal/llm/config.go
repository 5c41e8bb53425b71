// Package llm provides the language model client used for optional
// model-assisted skill detection. The abstraction keeps provider specifics
// out of the extraction code.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning and structured output.
	TierStandard ModelTier = "standard"
)

// Provider identifies an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// Tier selects which model answers requests. Skill detection is a
	// simple extraction task, so the default is the lite tier.
	Tier ModelTier
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Tier: TierLite,
	}
}

// Model returns the configured model name, falling back to the lite tier.
func (c *Config) Model() string {
	if model, ok := c.Models[c.Tier]; ok {
		return model
	}
	return c.Models[TierLite]
}
