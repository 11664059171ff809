package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Request validation errors
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeMissingField ErrorCode = "MISSING_FIELD"
	CodeBadFormat    ErrorCode = "BAD_FORMAT"
	CodeOutOfRange   ErrorCode = "OUT_OF_RANGE"

	// Generation pipeline errors
	CodeGenerationFailure     ErrorCode = "GENERATION_FAILURE"
	CodeUnrecoverableResponse ErrorCode = "UNRECOVERABLE_RESPONSE"
	CodeInvalidFormat         ErrorCode = "INVALID_FORMAT"
	CodeInvalidQuestionFormat ErrorCode = "INVALID_QUESTION_FORMAT"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// NewGenerationFailureError wraps a failed call to the text-generation service.
func NewGenerationFailureError(cause error) *DomainError {
	return NewError(CodeGenerationFailure, "Text generation service call failed", cause)
}

// NewUnrecoverableResponseError marks model output that could not be parsed as
// JSON even after recovery.
func NewUnrecoverableResponseError(cause error) *DomainError {
	return NewError(CodeUnrecoverableResponse, "Model response is not recoverable JSON", cause)
}

// NewInvalidFormatError marks parsed JSON with no recognizable question list.
func NewInvalidFormatError(message string) *DomainError {
	return NewError(CodeInvalidFormat, message, nil)
}

// NewInvalidQuestionFormatError marks one malformed item, identified by its
// 1-based position in the batch. The whole batch is rejected.
func NewInvalidQuestionFormatError(index int, reason string) *DomainError {
	err := NewError(CodeInvalidQuestionFormat, fmt.Sprintf("Question #%d is malformed: %s", index, reason), nil)
	err.Context = map[string]interface{}{"question_index": index}
	return err
}

// ValidationError represents a single request-validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates request-validation failures
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewFieldFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Value: value, Message: "has an invalid format"}
}

func NewFieldOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Value:   fmt.Sprintf("%d", value),
		Message: fmt.Sprintf("must be between %d and %d", min, max),
	}
}
