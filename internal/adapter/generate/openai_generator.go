package generate

import (
	"context"
	"fmt"

	"lexiquiz/internal/config"
	"lexiquiz/internal/domain"
	"lexiquiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// OpenAIGenerator implements domain.TextGenerator on OpenAI chat models via
// langchaingo. Interchangeable with GoogleAIGenerator through config.
type OpenAIGenerator struct {
	llm           *openai.LLM
	standardModel string
	liteModel     string
}

// NewOpenAIGenerator creates a connected OpenAI generation client.
func NewOpenAIGenerator(cfg config.GenerationModelConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if cfg.StandardModel == "" || cfg.LiteModel == "" {
		return nil, fmt.Errorf("openai model names cannot be empty")
	}

	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.StandardModel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	logger.Get().Info("OpenAI generator initialized",
		zap.String("standard_model", cfg.StandardModel),
		zap.String("lite_model", cfg.LiteModel))

	return &OpenAIGenerator{
		llm:           llm,
		standardModel: cfg.StandardModel,
		liteModel:     cfg.LiteModel,
	}, nil
}

// Generate implements domain.TextGenerator
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, tier domain.ModelTier) (string, error) {
	model := g.standardModel
	if tier == domain.TierLite {
		model = g.liteModel
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithModel(model))
	if err != nil {
		logger.Get().Error("OpenAI generation call failed",
			zap.Error(err),
			zap.String("model", model))
		return "", domain.NewGenerationFailureError(err)
	}
	return resp, nil
}

var _ domain.TextGenerator = (*OpenAIGenerator)(nil)
