// Package generate provides TextGenerator adapters over langchaingo model
// clients. Adapters are constructed once at startup and injected into the
// pipeline's entry points.
package generate

import (
	"context"
	"fmt"

	"lexiquiz/internal/config"
	"lexiquiz/internal/domain"
	"lexiquiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GoogleAIGenerator implements domain.TextGenerator on the Gemini family via
// langchaingo. The tier decides which configured model a call runs on.
type GoogleAIGenerator struct {
	llm           *googleai.GoogleAI
	standardModel string
	liteModel     string
}

// NewGoogleAIGenerator creates a connected Google AI generation client.
func NewGoogleAIGenerator(ctx context.Context, cfg config.GenerationModelConfig) (*GoogleAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("googleai API key cannot be empty")
	}
	if cfg.StandardModel == "" || cfg.LiteModel == "" {
		return nil, fmt.Errorf("googleai model names cannot be empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.StandardModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create googleai client: %w", err)
	}

	logger.Get().Info("GoogleAI generator initialized",
		zap.String("standard_model", cfg.StandardModel),
		zap.String("lite_model", cfg.LiteModel))

	return &GoogleAIGenerator{
		llm:           llm,
		standardModel: cfg.StandardModel,
		liteModel:     cfg.LiteModel,
	}, nil
}

// Generate implements domain.TextGenerator
func (g *GoogleAIGenerator) Generate(ctx context.Context, prompt string, tier domain.ModelTier) (string, error) {
	model := g.modelFor(tier)
	resp, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithModel(model))
	if err != nil {
		logger.Get().Error("GoogleAI generation call failed",
			zap.Error(err),
			zap.String("model", model))
		return "", domain.NewGenerationFailureError(err)
	}
	return resp, nil
}

func (g *GoogleAIGenerator) modelFor(tier domain.ModelTier) string {
	if tier == domain.TierLite {
		return g.liteModel
	}
	return g.standardModel
}

var _ domain.TextGenerator = (*GoogleAIGenerator)(nil)
