package validation

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"lexiquiz/internal/domain"
	"lexiquiz/internal/sanitize"
)

// ParseQuestions parses sanitized model output into a validated, normalized
// question batch. Validation is all-or-nothing: one malformed item rejects
// the whole batch. Given identical input, the output is identical.
func ParseQuestions(sanitized string) ([]domain.Question, error) {
	parsed, err := parseWithRecovery(sanitized)
	if err != nil {
		return nil, err
	}

	items, err := extractQuestionList(parsed)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(items))
	for i, item := range items {
		q, err := validateQuestion(i+1, item)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// parseWithRecovery attempts a strict JSON parse, then falls back to the
// first-"["-to-last-"]" substring with trailing commas stripped.
func parseWithRecovery(text string) (interface{}, error) {
	var parsed interface{}
	strictErr := json.Unmarshal([]byte(text), &parsed)
	if strictErr == nil {
		return parsed, nil
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, domain.NewUnrecoverableResponseError(strictErr)
	}

	candidate := sanitize.RemoveTrailingCommas(text[start : end+1])
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, domain.NewUnrecoverableResponseError(err)
	}
	return parsed, nil
}

// extractQuestionList accepts a bare array, or an object wrapping the array
// under a "quiz" or "questions" key.
func extractQuestionList(parsed interface{}) ([]interface{}, error) {
	if items, ok := parsed.([]interface{}); ok {
		return items, nil
	}

	if wrapper, ok := parsed.(map[string]interface{}); ok {
		for _, key := range []string{"quiz", "questions"} {
			if items, ok := wrapper[key].([]interface{}); ok {
				return items, nil
			}
		}
	}

	return nil, domain.NewInvalidFormatError("Parsed JSON contains no question list")
}

// validateQuestion enforces the per-item shape contract and applies text
// normalization. index is 1-based for error reporting.
func validateQuestion(index int, item interface{}) (domain.Question, error) {
	obj, ok := item.(map[string]interface{})
	if !ok {
		return domain.Question{}, domain.NewInvalidQuestionFormatError(index, "item is not an object")
	}

	prompt, err := extractPrompt(index, obj)
	if err != nil {
		return domain.Question{}, err
	}

	rawOptions, ok := obj["options"].([]interface{})
	if !ok {
		return domain.Question{}, domain.NewInvalidQuestionFormatError(index, "options is not an array")
	}
	if len(rawOptions) != 4 {
		return domain.Question{}, domain.NewInvalidQuestionFormatError(index, "options must contain exactly 4 entries")
	}
	options := make([]string, 4)
	for i, raw := range rawOptions {
		s, ok := raw.(string)
		if !ok {
			return domain.Question{}, domain.NewInvalidQuestionFormatError(index, "option is not a string")
		}
		options[i] = Capitalize(s)
	}

	correct, ok := obj["correctIndex"].(float64)
	if !ok {
		return domain.Question{}, domain.NewInvalidQuestionFormatError(index, "correctIndex is not numeric")
	}
	correctIndex := int(correct)
	if correctIndex < 0 || correctIndex >= len(options) {
		return domain.Question{}, domain.NewInvalidQuestionFormatError(index, "correctIndex is out of range")
	}

	explanation, ok := obj["explanation"].(string)
	if !ok || strings.TrimSpace(explanation) == "" {
		return domain.Question{}, domain.NewInvalidQuestionFormatError(index, "explanation is not a non-empty string")
	}

	passage, _ := obj["passage"].(string)

	return domain.Question{
		Passage:      passage,
		Prompt:       Capitalize(prompt),
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  Capitalize(explanation),
	}, nil
}

// extractPrompt resolves the question text. A string array is joined with
// single spaces; anything that does not resolve to a string fails the batch.
func extractPrompt(index int, obj map[string]interface{}) (string, error) {
	raw, ok := obj["question"]
	if !ok {
		raw = obj["prompt"]
	}

	switch v := raw.(type) {
	case string:
		return v, nil
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			s, ok := p.(string)
			if !ok {
				return "", domain.NewInvalidQuestionFormatError(index, "question array contains a non-string entry")
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), nil
	default:
		return "", domain.NewInvalidQuestionFormatError(index, "question does not resolve to a string")
	}
}

// Capitalize upper-cases the first letter of s, leaving the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
