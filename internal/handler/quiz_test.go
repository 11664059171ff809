package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"lexiquiz/internal/domain"
	"lexiquiz/internal/dto"
	"lexiquiz/internal/handler"
	"lexiquiz/internal/middleware"
	"lexiquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockQuizService
type MockQuizService struct {
	GenerateQuizFunc    func(ctx context.Context, userID string, req *domain.QuizRequest) (*dto.QuizResult, error)
	GenerateQuizSetFunc func(ctx context.Context, userID string, modes []domain.GameMode, base *domain.QuizRequest) (*dto.BulkGenerateResponse, error)
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, userID string, req *domain.QuizRequest) (*dto.QuizResult, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, userID, req)
	}
	panic("MockQuizService.GenerateQuizFunc not implemented")
}

func (m *MockQuizService) GenerateQuizSet(ctx context.Context, userID string, modes []domain.GameMode, base *domain.QuizRequest) (*dto.BulkGenerateResponse, error) {
	if m.GenerateQuizSetFunc != nil {
		return m.GenerateQuizSetFunc(ctx, userID, modes, base)
	}
	panic("MockQuizService.GenerateQuizSetFunc not implemented")
}

// MockWordOfDayService
type MockWordOfDayService struct {
	FetchWordOfDayFunc func(ctx context.Context, userID string) *dto.WordOfDayResponse
}

func (m *MockWordOfDayService) FetchWordOfDay(ctx context.Context, userID string) *dto.WordOfDayResponse {
	if m.FetchWordOfDayFunc != nil {
		return m.FetchWordOfDayFunc(ctx, userID)
	}
	panic("MockWordOfDayService.FetchWordOfDayFunc not implemented")
}

var (
	_ service.QuizService      = (*MockQuizService)(nil)
	_ service.WordOfDayService = (*MockWordOfDayService)(nil)
)

// fakeAuth injects a fixed user id, standing in for middleware.Protected.
func fakeAuth(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, userID)
		return c.Next()
	}
}

func newTestApp(quizSvc service.QuizService, wordSvc service.WordOfDayService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api := app.Group("/api", fakeAuth("user123"))

	quizHandler := handler.NewQuizHandler(quizSvc)
	api.Post("/quiz/generate", quizHandler.GenerateQuiz)
	api.Post("/quiz/generate/bulk", quizHandler.GenerateQuizSet)

	if wordSvc != nil {
		api.Get("/word-of-day", handler.NewWordHandler(wordSvc).GetWordOfDay)
	}
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestGenerateQuizHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		quizSvc := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, userID string, req *domain.QuizRequest) (*dto.QuizResult, error) {
				assert.Equal(t, "user123", userID)
				assert.Equal(t, domain.ModeVocabulary, req.Mode)
				return &dto.QuizResult{ID: "user123-vocabulary-X", Mode: "vocabulary"}, nil
			},
		}
		app := newTestApp(quizSvc, nil)

		status, body := postJSON(t, app, "/api/quiz/generate", dto.GenerateQuizRequest{
			Level: "B1", Mode: "vocabulary", Difficulty: "Medium",
		})
		assert.Equal(t, fiber.StatusOK, status)

		var result dto.QuizResult
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Equal(t, "user123-vocabulary-X", result.ID)
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		app := newTestApp(&MockQuizService{}, nil)

		status, body := postJSON(t, app, "/api/quiz/generate", dto.GenerateQuizRequest{
			Level: "Z9", Mode: "vocabulary", Difficulty: "Medium",
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body), string(domain.CodeValidation))
	})

	t.Run("generation failure returns 503", func(t *testing.T) {
		quizSvc := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, userID string, req *domain.QuizRequest) (*dto.QuizResult, error) {
				return nil, domain.NewGenerationFailureError(context.DeadlineExceeded)
			},
		}
		app := newTestApp(quizSvc, nil)

		status, body := postJSON(t, app, "/api/quiz/generate", dto.GenerateQuizRequest{
			Level: "B1", Mode: "grammar", Difficulty: "Hard",
		})
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Contains(t, string(body), string(domain.CodeGenerationFailure))
	})

	t.Run("malformed model output returns 502", func(t *testing.T) {
		quizSvc := &MockQuizService{
			GenerateQuizFunc: func(ctx context.Context, userID string, req *domain.QuizRequest) (*dto.QuizResult, error) {
				return nil, domain.NewInvalidQuestionFormatError(3, "options must contain exactly 4 entries")
			},
		}
		app := newTestApp(quizSvc, nil)

		status, body := postJSON(t, app, "/api/quiz/generate", dto.GenerateQuizRequest{
			Level: "B1", Mode: "grammar", Difficulty: "Hard",
		})
		assert.Equal(t, fiber.StatusBadGateway, status)
		assert.Contains(t, string(body), string(domain.CodeInvalidQuestionFormat))
	})
}

func TestGenerateQuizSetHandler(t *testing.T) {
	quizSvc := &MockQuizService{
		GenerateQuizSetFunc: func(ctx context.Context, userID string, modes []domain.GameMode, base *domain.QuizRequest) (*dto.BulkGenerateResponse, error) {
			assert.Len(t, modes, 2)
			return &dto.BulkGenerateResponse{Quizzes: []dto.QuizResult{
				{ID: "a", Mode: "vocabulary"},
				{ID: "b", Mode: "grammar"},
			}}, nil
		},
	}
	app := newTestApp(quizSvc, nil)

	status, body := postJSON(t, app, "/api/quiz/generate/bulk", dto.BulkGenerateRequest{
		Level: "B2", Modes: []string{"vocabulary", "grammar"}, Difficulty: "Hard",
	})
	assert.Equal(t, fiber.StatusOK, status)

	var resp dto.BulkGenerateResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Quizzes, 2)
}

func TestGetWordOfDayHandler(t *testing.T) {
	wordSvc := &MockWordOfDayService{
		FetchWordOfDayFunc: func(ctx context.Context, userID string) *dto.WordOfDayResponse {
			assert.Equal(t, "user123", userID)
			return &dto.WordOfDayResponse{Word: "lucid", Definition: "clearly expressed.", Source: "cache"}
		},
	}
	app := newTestApp(&MockQuizService{}, wordSvc)

	req := httptest.NewRequest("GET", "/api/word-of-day", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.WordOfDayResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "lucid", body.Word)
	assert.Equal(t, "cache", body.Source)
}
