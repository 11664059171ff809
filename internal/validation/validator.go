package validation

import (
	"strings"

	"lexiquiz/internal/domain"
	"lexiquiz/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

const (
	maxInterestTags   = 10
	maxInterestLength = 50
	maxDifficultyLen  = 30
)

// ValidateGenerateQuizRequest validates the body of a quiz-generation request.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Level) == "" {
		errors = append(errors, domain.NewMissingFieldError("level"))
	} else if !domain.Level(req.Level).IsValid() {
		errors = append(errors, domain.NewFieldFormatError("level", req.Level))
	}

	if strings.TrimSpace(req.Mode) == "" {
		errors = append(errors, domain.NewMissingFieldError("mode"))
	} else if !domain.GameMode(req.Mode).IsValid() {
		errors = append(errors, domain.NewFieldFormatError("mode", req.Mode))
	}

	if strings.TrimSpace(req.Difficulty) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	} else if len(req.Difficulty) > maxDifficultyLen {
		errors = append(errors, domain.NewFieldOutOfRangeError("difficulty", len(req.Difficulty), 1, maxDifficultyLen))
	}

	if len(req.Interests) > maxInterestTags {
		errors = append(errors, domain.NewFieldOutOfRangeError("interests", len(req.Interests), 0, maxInterestTags))
	}
	for _, tag := range req.Interests {
		if strings.TrimSpace(tag) == "" || len(tag) > maxInterestLength {
			errors = append(errors, domain.NewFieldFormatError("interests", tag))
			break
		}
	}

	return errors
}

// ValidateBulkGenerateRequest validates the body of a bulk-generation request.
// Modes must be distinct and each a known skill category.
func (v *Validator) ValidateBulkGenerateRequest(req *dto.BulkGenerateRequest) domain.ValidationErrors {
	errors := v.ValidateGenerateQuizRequest(&dto.GenerateQuizRequest{
		Level:      req.Level,
		Mode:       string(domain.ModeVocabulary), // modes validated separately below
		Difficulty: req.Difficulty,
		Interests:  req.Interests,
	})

	if len(req.Modes) == 0 {
		errors = append(errors, domain.NewMissingFieldError("modes"))
		return errors
	}

	seen := make(map[string]bool, len(req.Modes))
	for _, mode := range req.Modes {
		if !domain.GameMode(mode).IsValid() {
			errors = append(errors, domain.NewFieldFormatError("modes", mode))
			continue
		}
		if seen[mode] {
			errors = append(errors, domain.ValidationError{Field: "modes", Value: mode, Message: "is duplicated"})
		}
		seen[mode] = true
	}

	return errors
}
