package parser

import (
	"errors"
	"testing"

	"examforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("PlainObject", func(t *testing.T) {
		got, err := ExtractJSONObject(`{"a":1}`)
		assert.NoError(t, err)
		assert.Equal(t, `{"a":1}`, got)
	})

	t.Run("FencedWithProse", func(t *testing.T) {
		raw := "Sure, here is the result:\n```json\n{\"a\":1}\n```\nLet me know if you need more."
		got, err := ExtractJSONObject(raw)
		assert.NoError(t, err)
		assert.Equal(t, `{"a":1}`, got)
	})

	t.Run("FenceWithoutLanguageTag", func(t *testing.T) {
		got, err := ExtractJSONObject("```\n{\"a\":1}\n```")
		assert.NoError(t, err)
		assert.Equal(t, `{"a":1}`, got)
	})

	t.Run("SurroundingProseNoFence", func(t *testing.T) {
		got, err := ExtractJSONObject("The evaluation is {\"score\": 5} as requested.")
		assert.NoError(t, err)
		assert.Equal(t, `{"score": 5}`, got)
	})

	t.Run("NoBraces", func(t *testing.T) {
		_, err := ExtractJSONObject("no json here")
		assertCode(t, err, domain.CodeMalformedResponse)
	})

	t.Run("ReversedBraces", func(t *testing.T) {
		_, err := ExtractJSONObject("} backwards {")
		assertCode(t, err, domain.CodeMalformedResponse)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ExtractJSONObject("   ")
		assertCode(t, err, domain.CodeMalformedResponse)
	})
}

func validEvaluationJSON() string {
	return `{
		"score": 8,
		"maxScore": 10,
		"verdict": "Mostly correct",
		"strengths": ["clear structure", "good examples"],
		"weaknesses": ["missing complexity analysis"],
		"idealAnswer": "An ideal answer defines rotations and their invariants.",
		"conceptComparison": [
			{"concept": "Definition", "status": "covered"},
			{"concept": "Rotations", "status": "partial"}
		]
	}`
}

func TestParseEvaluation_Valid(t *testing.T) {
	eval, err := ParseEvaluation(validEvaluationJSON())
	require.NoError(t, err)
	assert.Equal(t, 8.0, eval.Score)
	assert.Equal(t, 10.0, eval.MaxScore)
	assert.Equal(t, "Mostly correct", eval.Verdict)
	assert.Len(t, eval.Strengths, 2)
	assert.Len(t, eval.Weaknesses, 1)
	assert.Equal(t, domain.ConceptPartial, eval.ConceptComparison[1].Status)
}

func TestParseEvaluation_SyntaxError(t *testing.T) {
	_, err := ParseEvaluation(`{"score": 8,`)
	assertCode(t, err, domain.CodeMalformedResponse)
}

func TestParseEvaluation_FieldViolations(t *testing.T) {
	tests := []struct {
		name     string
		jsonText string
		wantMsg  string
	}{
		{"ScoreMissing", `{"maxScore":10,"verdict":"ok","strengths":["s"],"weaknesses":["w"],"idealAnswer":"i","conceptComparison":[{"concept":"c","status":"covered"}]}`, "score"},
		{"ScoreNotNumeric", `{"score":"eight","maxScore":10,"verdict":"ok","strengths":["s"],"weaknesses":["w"],"idealAnswer":"i","conceptComparison":[{"concept":"c","status":"covered"}]}`, "score"},
		{"MaxScoreMissing", `{"score":8,"verdict":"ok","strengths":["s"],"weaknesses":["w"],"idealAnswer":"i","conceptComparison":[{"concept":"c","status":"covered"}]}`, "maxScore"},
		{"VerdictEmpty", `{"score":8,"maxScore":10,"verdict":"","strengths":["s"],"weaknesses":["w"],"idealAnswer":"i","conceptComparison":[{"concept":"c","status":"covered"}]}`, "verdict"},
		{"IdealAnswerMissing", `{"score":8,"maxScore":10,"verdict":"ok","strengths":["s"],"weaknesses":["w"],"conceptComparison":[{"concept":"c","status":"covered"}]}`, "idealAnswer"},
		{"StrengthsEmpty", `{"score":8,"maxScore":10,"verdict":"ok","strengths":[],"weaknesses":["w"],"idealAnswer":"i","conceptComparison":[{"concept":"c","status":"covered"}]}`, "strengths"},
		{"WeaknessesWrongType", `{"score":8,"maxScore":10,"verdict":"ok","strengths":["s"],"weaknesses":"w","idealAnswer":"i","conceptComparison":[{"concept":"c","status":"covered"}]}`, "weaknesses"},
		{"ConceptComparisonEmpty", `{"score":8,"maxScore":10,"verdict":"ok","strengths":["s"],"weaknesses":["w"],"idealAnswer":"i","conceptComparison":[]}`, "conceptComparison"},
		{"ConceptMissingStatus", `{"score":8,"maxScore":10,"verdict":"ok","strengths":["s"],"weaknesses":["w"],"idealAnswer":"i","conceptComparison":[{"concept":"c"}]}`, "conceptComparison"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEvaluation(tt.jsonText)
			assertCode(t, err, domain.CodeInvalidEvaluation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseEvaluation_ReportsFirstViolation(t *testing.T) {
	// Both score and verdict are broken; score is checked first.
	_, err := ParseEvaluation(`{"score":null,"maxScore":10,"verdict":"","strengths":[],"weaknesses":[],"idealAnswer":"","conceptComparison":[]}`)
	assertCode(t, err, domain.CodeInvalidEvaluation)
	assert.Contains(t, err.Error(), "score")
}

func TestParseEvaluation_DoesNotClampScore(t *testing.T) {
	jsonText := `{"score":15,"maxScore":10,"verdict":"ok","strengths":["s"],"weaknesses":["w"],"idealAnswer":"i","conceptComparison":[{"concept":"c","status":"covered"}]}`
	eval, err := ParseEvaluation(jsonText)
	require.NoError(t, err)
	// Out-of-range handling is the caller's decision.
	assert.Equal(t, 15.0, eval.Score)
}

func TestParseQuestionList(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		questions, err := ParseQuestionList(`{"questions":[{"id":"q1","text":"Explain AVL rotations.","marks":10},{"id":"q2","text":"Derive the height bound.","marks":15}]}`)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, "q1", questions[0].ID)
		assert.Equal(t, 15, questions[1].Marks)
	})

	t.Run("MissingQuestionsField", func(t *testing.T) {
		_, err := ParseQuestionList(`{"items":[]}`)
		assertCode(t, err, domain.CodeInvalidGeneration)
	})

	t.Run("QuestionsNotArray", func(t *testing.T) {
		_, err := ParseQuestionList(`{"questions":"none"}`)
		assertCode(t, err, domain.CodeMalformedResponse)
	})

	t.Run("EmptyID", func(t *testing.T) {
		_, err := ParseQuestionList(`{"questions":[{"id":" ","text":"t"}]}`)
		assertCode(t, err, domain.CodeInvalidGeneration)
	})

	t.Run("EmptyText", func(t *testing.T) {
		_, err := ParseQuestionList(`{"questions":[{"id":"q1","text":""}]}`)
		assertCode(t, err, domain.CodeInvalidGeneration)
	})

	t.Run("SyntaxError", func(t *testing.T) {
		_, err := ParseQuestionList(`{"questions":[`)
		assertCode(t, err, domain.CodeMalformedResponse)
	})
}
