package validation

import (
	"strings"
	"testing"

	"lexiquiz/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateGenerateQuizRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		req        dto.GenerateQuizRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req: dto.GenerateQuizRequest{
				Level:      "B1",
				Mode:       "vocabulary",
				Difficulty: "Medium",
				Interests:  []string{"cooking", "music"},
			},
			wantFields: nil,
		},
		{
			name:       "missing everything",
			req:        dto.GenerateQuizRequest{},
			wantFields: []string{"level", "mode", "difficulty"},
		},
		{
			name: "unknown level",
			req: dto.GenerateQuizRequest{
				Level:      "Z9",
				Mode:       "grammar",
				Difficulty: "Easy",
			},
			wantFields: []string{"level"},
		},
		{
			name: "unknown mode",
			req: dto.GenerateQuizRequest{
				Level:      "A2",
				Mode:       "karaoke",
				Difficulty: "Easy",
			},
			wantFields: []string{"mode"},
		},
		{
			name: "difficulty too long",
			req: dto.GenerateQuizRequest{
				Level:      "A2",
				Mode:       "grammar",
				Difficulty: strings.Repeat("x", 31),
			},
			wantFields: []string{"difficulty"},
		},
		{
			name: "blank interest tag",
			req: dto.GenerateQuizRequest{
				Level:      "A2",
				Mode:       "grammar",
				Difficulty: "Easy",
				Interests:  []string{"   "},
			},
			wantFields: []string{"interests"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateGenerateQuizRequest(&tt.req)
			assert.Len(t, errs, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, errs[i].Field)
			}
		})
	}
}

func TestValidateBulkGenerateRequest(t *testing.T) {
	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		errs := v.ValidateBulkGenerateRequest(&dto.BulkGenerateRequest{
			Level:      "B2",
			Modes:      []string{"vocabulary", "grammar"},
			Difficulty: "Hard",
		})
		assert.Empty(t, errs)
	})

	t.Run("empty modes", func(t *testing.T) {
		errs := v.ValidateBulkGenerateRequest(&dto.BulkGenerateRequest{
			Level:      "B2",
			Difficulty: "Hard",
		})
		assert.Len(t, errs, 1)
		assert.Equal(t, "modes", errs[0].Field)
	})

	t.Run("duplicate mode", func(t *testing.T) {
		errs := v.ValidateBulkGenerateRequest(&dto.BulkGenerateRequest{
			Level:      "B2",
			Modes:      []string{"grammar", "grammar"},
			Difficulty: "Hard",
		})
		assert.Len(t, errs, 1)
		assert.Equal(t, "modes", errs[0].Field)
		assert.Contains(t, errs[0].Message, "duplicated")
	})

	t.Run("unknown mode", func(t *testing.T) {
		errs := v.ValidateBulkGenerateRequest(&dto.BulkGenerateRequest{
			Level:      "B2",
			Modes:      []string{"karaoke"},
			Difficulty: "Hard",
		})
		assert.Len(t, errs, 1)
		assert.Equal(t, "modes", errs[0].Field)
	})
}
