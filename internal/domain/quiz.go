package domain

import "strings"

// Level is a CEFR proficiency tag used to calibrate question difficulty.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists every supported proficiency level.
func Levels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// IsValid reports whether the level is a known CEFR tag.
func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// GameMode is one of the five quiz skill categories.
type GameMode string

const (
	ModeVocabulary           GameMode = "vocabulary"
	ModeGrammar              GameMode = "grammar"
	ModeTranslation          GameMode = "translation"
	ModeSentenceConstruction GameMode = "sentence_construction"
	ModeReadingComprehension GameMode = "reading_comprehension"
)

// GameModes lists every supported game mode.
func GameModes() []GameMode {
	return []GameMode{
		ModeVocabulary,
		ModeGrammar,
		ModeTranslation,
		ModeSentenceConstruction,
		ModeReadingComprehension,
	}
}

// IsValid reports whether the mode is a known skill category.
func (m GameMode) IsValid() bool {
	switch m {
	case ModeVocabulary, ModeGrammar, ModeTranslation, ModeSentenceConstruction, ModeReadingComprehension:
		return true
	}
	return false
}

// DisplayName returns the human-readable category name used in prompts.
func (m GameMode) DisplayName() string {
	parts := strings.Split(string(m), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// QuizRequest carries the parameters of one generation call. It is immutable
// once built into a prompt.
type QuizRequest struct {
	Level      Level
	Mode       GameMode
	Difficulty string
	Interests  []string
}

// Question is one validated quiz item.
type Question struct {
	Passage      string   `json:"passage,omitempty"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// QuizResult is the output of one generation call: a unique identifier plus
// the ordered, validated question batch.
type QuizResult struct {
	ID        string
	Mode      GameMode
	Questions []Question
}

// QuestionsPerQuiz is the batch size requested from the model. The validator
// does not hard-fail on other lengths.
const QuestionsPerQuiz = 15
