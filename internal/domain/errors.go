package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal ErrorCode = "INTERNAL_ERROR"
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Request validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Model pipeline errors
	CodeUpstreamCall      ErrorCode = "UPSTREAM_CALL_ERROR"
	CodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	CodeInvalidEvaluation ErrorCode = "INVALID_EVALUATION"
	CodeInvalidGeneration ErrorCode = "INVALID_GENERATION"
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

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewUpstreamCallError wraps a network or provider failure while calling the
// generative model. This is the only error kind eligible for retry.
func NewUpstreamCallError(cause error) *DomainError {
	return NewError(CodeUpstreamCall, "Model provider call failed", cause)
}

// NewMalformedResponseError indicates the provider output contained no
// parseable JSON object.
func NewMalformedResponseError(cause error) *DomainError {
	return NewError(CodeMalformedResponse, "Model response contained no parseable JSON", cause)
}

// NewInvalidEvaluationError indicates the evaluation JSON parsed but failed
// schema validation. field names the first violated field.
func NewInvalidEvaluationError(field string) *DomainError {
	return NewError(CodeInvalidEvaluation, fmt.Sprintf("Evaluation failed schema validation: %s", field), nil)
}

// NewInvalidGenerationError indicates the question list JSON parsed but failed
// schema validation.
func NewInvalidGenerationError(message string) *DomainError {
	return NewError(CodeInvalidGeneration, fmt.Sprintf("Generated question list is invalid: %s", message), nil)
}

// IsRetryable reports whether err is an upstream call failure that retrying
// the identical prompt could plausibly fix. Malformed or schema-invalid
// responses are not retryable.
func IsRetryable(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == CodeUpstreamCall
	}
	return false
}
