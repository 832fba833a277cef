// Package parser converts raw model replies into typed results. Models
// routinely wrap JSON in markdown fences or surrounding prose, so extraction
// is tolerant of formatting noise; schema validation on the other hand is
// strict and fails loudly rather than passing bad data downstream.
package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"examforge/internal/domain"
)

var fenceRe = regexp.MustCompile("(?is)```(?:json)?(.*?)```")

// ExtractJSONObject strips an optional fenced code block and slices the text
// from the first '{' to the last '}' inclusive. It returns a
// MALFORMED_RESPONSE error when no such pair exists.
func ExtractJSONObject(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.NewMalformedResponseError(fmt.Errorf("response was empty"))
	}

	cleaned := raw
	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		cleaned = m[1]
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", domain.NewMalformedResponseError(fmt.Errorf("no JSON object delimiters found"))
	}
	return cleaned[start : end+1], nil
}

// rawEvaluation mirrors the evaluation schema with json.RawMessage fields so
// each field's presence and type can be checked individually, in a fixed
// order, and the first violation reported by name.
type rawEvaluation struct {
	Score             json.RawMessage `json:"score"`
	MaxScore          json.RawMessage `json:"maxScore"`
	Verdict           json.RawMessage `json:"verdict"`
	Strengths         json.RawMessage `json:"strengths"`
	Weaknesses        json.RawMessage `json:"weaknesses"`
	IdealAnswer       json.RawMessage `json:"idealAnswer"`
	ConceptComparison json.RawMessage `json:"conceptComparison"`
}

// ParseEvaluation parses jsonText as an Evaluation and validates required
// fields and types in order: score, maxScore, verdict, idealAnswer,
// strengths, weaknesses, conceptComparison. It does NOT clamp score to
// [0, maxScore]; the caller decides whether an out-of-range score is a
// contract violation.
func ParseEvaluation(jsonText string) (*domain.Evaluation, error) {
	var raw rawEvaluation
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, domain.NewMalformedResponseError(fmt.Errorf("evaluation JSON syntax error: %w", err))
	}

	eval := &domain.Evaluation{}

	if isNull(raw.Score) || json.Unmarshal(raw.Score, &eval.Score) != nil {
		return nil, domain.NewInvalidEvaluationError("score must be numeric")
	}
	if isNull(raw.MaxScore) || json.Unmarshal(raw.MaxScore, &eval.MaxScore) != nil {
		return nil, domain.NewInvalidEvaluationError("maxScore must be numeric")
	}
	if err := json.Unmarshal(orNull(raw.Verdict), &eval.Verdict); err != nil || eval.Verdict == "" {
		return nil, domain.NewInvalidEvaluationError("verdict must be a non-empty string")
	}
	if err := json.Unmarshal(orNull(raw.IdealAnswer), &eval.IdealAnswer); err != nil || eval.IdealAnswer == "" {
		return nil, domain.NewInvalidEvaluationError("idealAnswer must be a non-empty string")
	}
	if err := json.Unmarshal(orNull(raw.Strengths), &eval.Strengths); err != nil || len(eval.Strengths) == 0 {
		return nil, domain.NewInvalidEvaluationError("strengths must be a non-empty array of strings")
	}
	if err := json.Unmarshal(orNull(raw.Weaknesses), &eval.Weaknesses); err != nil || len(eval.Weaknesses) == 0 {
		return nil, domain.NewInvalidEvaluationError("weaknesses must be a non-empty array of strings")
	}

	var concepts []struct {
		Concept *string `json:"concept"`
		Status  *string `json:"status"`
	}
	if err := json.Unmarshal(orNull(raw.ConceptComparison), &concepts); err != nil || len(concepts) == 0 {
		return nil, domain.NewInvalidEvaluationError("conceptComparison must be a non-empty array")
	}
	for i, c := range concepts {
		if c.Concept == nil || c.Status == nil {
			return nil, domain.NewInvalidEvaluationError(fmt.Sprintf("conceptComparison[%d] must have string concept and status", i))
		}
		eval.ConceptComparison = append(eval.ConceptComparison, domain.ConceptComparison{
			Concept: *c.Concept,
			Status:  domain.ConceptStatus(*c.Status),
		})
	}

	return eval, nil
}

// ParseQuestionList parses jsonText as {"questions": [...]}. The questions
// field must be present and an array, and every item must carry a non-empty
// id and text. Canonical renumbering of ids is the generator's job, not the
// parser's.
func ParseQuestionList(jsonText string) ([]domain.Question, error) {
	var payload struct {
		Questions *[]struct {
			ID    string  `json:"id"`
			Text  string  `json:"text"`
			Marks float64 `json:"marks"`
		} `json:"questions"`
	}
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, domain.NewMalformedResponseError(fmt.Errorf("question list JSON syntax error: %w", err))
	}
	if payload.Questions == nil {
		return nil, domain.NewInvalidGenerationError("questions array is missing")
	}

	questions := make([]domain.Question, 0, len(*payload.Questions))
	for i, q := range *payload.Questions {
		if strings.TrimSpace(q.ID) == "" {
			return nil, domain.NewInvalidGenerationError(fmt.Sprintf("questions[%d] has empty id", i))
		}
		if strings.TrimSpace(q.Text) == "" {
			return nil, domain.NewInvalidGenerationError(fmt.Sprintf("questions[%d] has empty text", i))
		}
		questions = append(questions, domain.Question{
			ID:    q.ID,
			Text:  q.Text,
			Marks: int(q.Marks),
		})
	}
	return questions, nil
}

func isNull(raw json.RawMessage) bool {
	return raw == nil || strings.TrimSpace(string(raw)) == "null"
}

func orNull(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return json.RawMessage("null")
	}
	return raw
}
