package dto

import "time"

// GenerateQuizRequest is the body of POST /api/quiz/generate
type GenerateQuizRequest struct {
	Level      string   `json:"level"`
	Mode       string   `json:"mode"`
	Difficulty string   `json:"difficulty"`
	Interests  []string `json:"interests,omitempty"`
}

// QuestionResponse represents one validated question in the API response
type QuestionResponse struct {
	Passage      string   `json:"passage,omitempty"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// QuizResult represents a generated quiz batch in the API response
type QuizResult struct {
	ID        string             `json:"id"`
	Mode      string             `json:"mode"`
	Questions []QuestionResponse `json:"questions"`
}

// BulkGenerateRequest is the body of POST /api/quiz/generate/bulk. One quiz is
// generated per mode, in parallel.
type BulkGenerateRequest struct {
	Level      string   `json:"level"`
	Modes      []string `json:"modes"`
	Difficulty string   `json:"difficulty"`
	Interests  []string `json:"interests,omitempty"`
}

// BulkGenerateResponse carries one quiz per requested mode
type BulkGenerateResponse struct {
	Quizzes []QuizResult `json:"quizzes"`
}

// WordOfDayResponse represents the resolved word for the current day.
// Source is "cache", "generated", or "fallback".
type WordOfDayResponse struct {
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	Date       string    `json:"date"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	ExpiresAt  time.Time `json:"expiresAt,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
