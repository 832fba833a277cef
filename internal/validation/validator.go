// Package validation checks incoming API requests before they reach the
// service layer. All violations for a request are collected and returned
// together as domain.ValidationErrors.
package validation

import (
	"errors"
	"strconv"
	"strings"

	"examforge/internal/domain"
	"examforge/internal/dto"
)

const (
	// MaxQuestionsPerRequest bounds how many questions one session may ask for.
	MaxQuestionsPerRequest = 20
	// MaxAnswersPerBatch bounds how many answers one batch call may grade.
	MaxAnswersPerBatch = 20
	// MaxAnswerLength bounds the student answer size in characters.
	MaxAnswerLength = 8000
	// MaxMarks bounds the per-question marks value.
	MaxMarks = 100
)

// ValidateGenerateQuestionsRequest validates a question generation request.
func ValidateGenerateQuestionsRequest(req *dto.GenerateQuestionsRequest) error {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Subject) == "" {
		errs = append(errs, domain.ValidationError{Field: "subject", Message: "subject is required"})
	}
	if strings.TrimSpace(req.Topic) == "" {
		errs = append(errs, domain.ValidationError{Field: "topic", Message: "topic is required"})
	}
	if !domain.IsValidQuestionType(req.QuestionType) {
		errs = append(errs, domain.ValidationError{Field: "questionType", Message: "questionType must be one of: subjective, numerical, mixed"})
	}
	if !domain.IsValidDifficulty(req.Difficulty) {
		errs = append(errs, domain.ValidationError{Field: "difficulty", Message: "difficulty must be one of: easy, medium, hard"})
	}
	if req.NumQuestions < 1 || req.NumQuestions > MaxQuestionsPerRequest {
		errs = append(errs, domain.ValidationError{Field: "numQuestions", Message: "numQuestions must be between 1 and 20"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateEvaluateAnswerRequest validates a single answer evaluation request.
func ValidateEvaluateAnswerRequest(req *dto.EvaluateAnswerRequest) error {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Subject) == "" {
		errs = append(errs, domain.ValidationError{Field: "subject", Message: "subject is required"})
	}
	if strings.TrimSpace(req.Topic) == "" {
		errs = append(errs, domain.ValidationError{Field: "topic", Message: "topic is required"})
	}
	if strings.TrimSpace(req.QuestionText) == "" {
		errs = append(errs, domain.ValidationError{Field: "questionText", Message: "questionText is required"})
	}
	if strings.TrimSpace(req.StudentAnswer) == "" {
		errs = append(errs, domain.ValidationError{Field: "studentAnswer", Message: "studentAnswer is required"})
	} else if len(req.StudentAnswer) > MaxAnswerLength {
		errs = append(errs, domain.ValidationError{Field: "studentAnswer", Message: "studentAnswer exceeds the maximum length"})
	}
	if req.Difficulty != "" && !domain.IsValidDifficulty(req.Difficulty) {
		errs = append(errs, domain.ValidationError{Field: "difficulty", Message: "difficulty must be one of: easy, medium, hard"})
	}
	if req.Marks < 0 || req.Marks > MaxMarks {
		errs = append(errs, domain.ValidationError{Field: "marks", Message: "marks must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateEvaluateBatchRequest validates a batch evaluation request. Per-item
// violations are reported with an answers[i] field prefix.
func ValidateEvaluateBatchRequest(req *dto.EvaluateBatchRequest) error {
	var errs domain.ValidationErrors

	if len(req.Answers) == 0 {
		errs = append(errs, domain.ValidationError{Field: "answers", Message: "answers must contain at least one item"})
		return errs
	}
	if len(req.Answers) > MaxAnswersPerBatch {
		errs = append(errs, domain.ValidationError{Field: "answers", Message: "answers must contain at most 20 items"})
		return errs
	}

	for i := range req.Answers {
		if err := ValidateEvaluateAnswerRequest(&req.Answers[i]); err != nil {
			var itemErrs domain.ValidationErrors
			if errors.As(err, &itemErrs) {
				for _, ve := range itemErrs {
					errs = append(errs, domain.ValidationError{
						Field:   "answers[" + strconv.Itoa(i) + "]." + ve.Field,
						Message: ve.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
