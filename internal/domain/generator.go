package domain

import "context"

// ModelTier selects which model a generation call runs on.
type ModelTier string

const (
	// TierStandard is used for full quiz batches.
	TierStandard ModelTier = "standard"
	// TierLite is a lighter, faster model used for single-record lookups
	// such as the word of the day.
	TierLite ModelTier = "lite"
)

// TextGenerator defines the port to an external text-generation service.
// Implementations submit the prompt and return the raw, unstructured response
// text. A failed call surfaces as a GENERATION_FAILURE domain error; retry
// policy belongs to the caller.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, tier ModelTier) (string, error)
}
