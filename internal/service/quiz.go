package service

import (
	"context"
	"fmt"

	"lexiquiz/internal/domain"
	"lexiquiz/internal/dto"
	"lexiquiz/internal/logger"
	"lexiquiz/internal/prompt"
	"lexiquiz/internal/sanitize"
	"lexiquiz/internal/util"
	"lexiquiz/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuizService defines the interface for quiz generation operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, userID string, req *domain.QuizRequest) (*dto.QuizResult, error)
	GenerateQuizSet(ctx context.Context, userID string, modes []domain.GameMode, base *domain.QuizRequest) (*dto.BulkGenerateResponse, error)
}

// quizService implements QuizService
type quizService struct {
	generator domain.TextGenerator
}

// NewQuizService creates a new instance of quizService
func NewQuizService(generator domain.TextGenerator) QuizService {
	return &quizService{generator: generator}
}

// GenerateQuiz runs the full pipeline for one batch: prompt, generation,
// sanitization, validation. Failures propagate to the caller untouched;
// retry and backoff are the caller's concern.
func (s *quizService) GenerateQuiz(ctx context.Context, userID string, req *domain.QuizRequest) (*dto.QuizResult, error) {
	p := prompt.BuildQuizPrompt(req)

	raw, err := s.generator.Generate(ctx, p, domain.TierStandard)
	if err != nil {
		return nil, err
	}

	questions, err := validation.ParseQuestions(sanitize.Clean(raw))
	if err != nil {
		logger.Get().Warn("Quiz batch rejected",
			zap.Error(err),
			zap.String("mode", string(req.Mode)),
			zap.String("level", string(req.Level)))
		return nil, err
	}

	if len(questions) != domain.QuestionsPerQuiz {
		// Shape checks passed, so the batch is accepted; the count is logged
		// for prompt tuning.
		logger.Get().Info("Model returned off-contract batch size",
			zap.Int("got", len(questions)),
			zap.Int("want", domain.QuestionsPerQuiz),
			zap.String("mode", string(req.Mode)))
	}

	result := &domain.QuizResult{
		ID:        quizResultID(userID, req.Mode),
		Mode:      req.Mode,
		Questions: questions,
	}
	return toQuizResultDTO(result), nil
}

// GenerateQuizSet issues one independent generation call per mode in
// parallel. Any single failure fails the whole set.
func (s *quizService) GenerateQuizSet(ctx context.Context, userID string, modes []domain.GameMode, base *domain.QuizRequest) (*dto.BulkGenerateResponse, error) {
	results := make([]*dto.QuizResult, len(modes))

	g, gctx := errgroup.WithContext(ctx)
	for i, mode := range modes {
		g.Go(func() error {
			req := &domain.QuizRequest{
				Level:      base.Level,
				Mode:       mode,
				Difficulty: base.Difficulty,
				Interests:  base.Interests,
			}
			result, err := s.GenerateQuiz(gctx, userID, req)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.BulkGenerateResponse{Quizzes: make([]dto.QuizResult, len(results))}
	for i, r := range results {
		resp.Quizzes[i] = *r
	}
	return resp, nil
}

// quizResultID derives a unique identifier from the user, the game mode, and
// a timestamp-bearing ULID.
func quizResultID(userID string, mode domain.GameMode) string {
	return fmt.Sprintf("%s-%s-%s", userID, mode, util.NewULID())
}

func toQuizResultDTO(result *domain.QuizResult) *dto.QuizResult {
	questions := make([]dto.QuestionResponse, len(result.Questions))
	for i, q := range result.Questions {
		questions[i] = dto.QuestionResponse{
			Passage:      q.Passage,
			Prompt:       q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		}
	}
	return &dto.QuizResult{
		ID:        result.ID,
		Mode:      string(result.Mode),
		Questions: questions,
	}
}
