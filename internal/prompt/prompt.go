// Package prompt builds the natural-language instructions sent to the
// text-generation service. Builders are pure: the same request always yields
// the same text.
package prompt

import (
	"fmt"
	"strings"

	"lexiquiz/internal/domain"
)

// modeRules holds the item-shape contract for one game mode.
var modeRules = map[domain.GameMode]string{
	domain.ModeVocabulary: `Each question tests English vocabulary in context.
- "question" asks for the meaning or correct usage of an English word suited to the learner's level.
- The four "options" are single English words or short phrases; exactly one is correct.`,
	domain.ModeGrammar: `Each question tests one English grammar point.
- "question" presents a sentence with a blank or asks which sentence is grammatically correct.
- The four "options" are candidate words, phrases, or full sentences; exactly one is correct.`,
	domain.ModeTranslation: `Each question tests translation from Filipino to English.
- "question" is a single Filipino term or short phrase.
- The four "options" are English translations; exactly one is the correct translation.`,
	domain.ModeSentenceConstruction: `Each question tests sentence construction.
- "question" lists scrambled English words or asks which arrangement forms a correct sentence.
- The four "options" are candidate sentences built from those words; exactly one is correctly ordered.`,
	domain.ModeReadingComprehension: `Each question tests reading comprehension.
- Every item MUST include a "passage" field: a short English text of 3 to 5 sentences suited to the learner's level.
- "question" asks about the passage's content, inference, or vocabulary in context.
- The four "options" are candidate answers; exactly one is supported by the passage.`,
}

// BuildQuizPrompt renders the instruction for one quiz batch.
func BuildQuizPrompt(req *domain.QuizRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an English-skills quiz generator for a mobile learning app.\n")
	fmt.Fprintf(&b, "Create exactly %d unique multiple-choice questions for the %q skill category.\n",
		domain.QuestionsPerQuiz, req.Mode.DisplayName())
	fmt.Fprintf(&b, "Target learner: CEFR level %s. Difficulty: %s.\n", req.Level, req.Difficulty)
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "Where natural, theme questions around the learner's interests: %s.\n",
			strings.Join(req.Interests, ", "))
	}

	b.WriteString("\nCategory rules:\n")
	b.WriteString(modeRules[req.Mode])

	b.WriteString(`

Each question object must have exactly these fields:
- "question": the question text (a single string)
- "options": an array of exactly 4 distinct answer strings
- "correctIndex": the 0-based integer index of the correct option
- "explanation": a short explanation of why the correct option is right`)
	if req.Mode == domain.ModeReadingComprehension {
		b.WriteString("\n- \"passage\": the reading passage for the question")
	}

	fmt.Fprintf(&b, `

Output format contract:
Respond with a raw JSON array of %d question objects and nothing else.
No Markdown, no code fences, no wrapper object, no commentary before or after the array.`,
		domain.QuestionsPerQuiz)

	return b.String()
}

// BuildWordOfDayPrompt renders the instruction for the single word-of-day
// lookup. The seed pins the output: identical seeds must yield identical
// words.
func BuildWordOfDayPrompt(seed string) string {
	return fmt.Sprintf(`You are a vocabulary coach for English learners.
Pick one interesting English word worth learning and define it in one plain sentence.

Selection seed: %q. Treat the seed as deterministic input: the same seed must always produce the same word and definition.

Respond with a raw JSON object of the form {"word": "...", "definition": "..."} and nothing else.
No Markdown, no code fences, no commentary.`, seed)
}
