package handler

import (
	"lexiquiz/internal/domain"
	"lexiquiz/internal/dto"
	"lexiquiz/internal/logger"
	"lexiquiz/internal/middleware"
	"lexiquiz/internal/service"
	"lexiquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-generation HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   quizService,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz handles POST /api/quiz/generate
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateGenerateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	userID := middleware.UserID(c)
	result, err := h.service.GenerateQuiz(c.UserContext(), userID, &domain.QuizRequest{
		Level:      domain.Level(req.Level),
		Mode:       domain.GameMode(req.Mode),
		Difficulty: req.Difficulty,
		Interests:  req.Interests,
	})
	if err != nil {
		logger.Get().Error("Quiz generation failed",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("mode", req.Mode))
		return err
	}

	return c.JSON(result)
}

// GenerateQuizSet handles POST /api/quiz/generate/bulk
func (h *QuizHandler) GenerateQuizSet(c *fiber.Ctx) error {
	var req dto.BulkGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateBulkGenerateRequest(&req); len(errs) > 0 {
		return errs
	}

	modes := make([]domain.GameMode, len(req.Modes))
	for i, m := range req.Modes {
		modes[i] = domain.GameMode(m)
	}

	userID := middleware.UserID(c)
	result, err := h.service.GenerateQuizSet(c.UserContext(), userID, modes, &domain.QuizRequest{
		Level:      domain.Level(req.Level),
		Difficulty: req.Difficulty,
		Interests:  req.Interests,
	})
	if err != nil {
		logger.Get().Error("Bulk quiz generation failed",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Strings("modes", req.Modes))
		return err
	}

	return c.JSON(result)
}
