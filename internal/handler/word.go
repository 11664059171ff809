package handler

import (
	"lexiquiz/internal/middleware"
	"lexiquiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// WordHandler handles word-of-the-day HTTP requests
type WordHandler struct {
	service service.WordOfDayService
}

// NewWordHandler creates a new WordHandler instance
func NewWordHandler(wordService service.WordOfDayService) *WordHandler {
	return &WordHandler{service: wordService}
}

// GetWordOfDay handles GET /api/word-of-day. The resolver never fails, so
// this endpoint always answers 200 with a usable record.
func (h *WordHandler) GetWordOfDay(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	return c.JSON(h.service.FetchWordOfDay(c.UserContext(), userID))
}
