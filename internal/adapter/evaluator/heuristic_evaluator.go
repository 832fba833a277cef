package evaluator

import (
	"context"
	"fmt"
	"math"
	"strings"

	"examforge/internal/domain"
)

// heuristicEvaluator implements domain.AnswerEvaluator with a deterministic
// scoring policy and no network I/O. Scores derive from answer length and
// keyword presence only; the result looks like a real evaluation but is a
// demo-grade approximation.
//
// Policy: lengthScore = min(wordCount/50, 1) * 0.5,
// keywordScore = (hits/2) * 0.3 over {topic, subject} substring matches,
// clarityScore = min(len/400, 1) * 0.2,
// score = clamp(max(1, round(sum * maxScore)), maxScore).
type heuristicEvaluator struct{}

// NewHeuristicEvaluator creates the fallback evaluator.
func NewHeuristicEvaluator() domain.AnswerEvaluator {
	return &heuristicEvaluator{}
}

func (e *heuristicEvaluator) Evaluate(_ context.Context, input domain.EvaluationInput) (*domain.Evaluation, error) {
	maxScore := input.MaxScore
	if maxScore <= 0 {
		maxScore = domain.DefaultMaxScore
	}

	answer := strings.TrimSpace(input.StudentAnswer)
	lowerAnswer := strings.ToLower(answer)
	wordCount := len(strings.Fields(answer))

	keywordHits := 0
	for _, keyword := range []string{input.Topic, input.Subject} {
		if keyword == "" {
			continue
		}
		if strings.Contains(lowerAnswer, strings.ToLower(keyword)) {
			keywordHits++
		}
	}

	lengthScore := math.Min(float64(wordCount)/50, 1) * 0.5
	keywordScore := float64(keywordHits) / 2 * 0.3
	clarityScore := math.Min(float64(len(answer))/400, 1) * 0.2

	score := math.Max(1, math.Round((lengthScore+keywordScore+clarityScore)*maxScore))
	score = math.Min(score, maxScore)

	var strengths []string
	if wordCount > 60 {
		strengths = append(strengths, "Provided a detailed narrative.")
	}
	if keywordHits > 0 {
		strengths = append(strengths, "Referenced the core subject/topic.")
	}
	if strings.Contains(lowerAnswer, "balance") || strings.Contains(lowerAnswer, "derive") {
		strengths = append(strengths, "Used appropriate academic language.")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Answer is concise and to the point.")
	}

	var weaknesses []string
	if wordCount < 40 {
		weaknesses = append(weaknesses, "Expand your reasoning with more supporting details.")
	}
	if keywordHits == 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("Explicitly mention %s or related terminology.", input.Topic))
	}
	weaknesses = append(weaknesses, "Include numeric values or diagrams where relevant.")

	conceptComparison := []domain.ConceptComparison{
		{Concept: "Definition", Status: statusWhen(wordCount > 30, domain.ConceptPartial)},
		{Concept: "Key steps", Status: statusWhen(wordCount > 60, domain.ConceptPartial)},
		{Concept: "Applications", Status: statusWhen(keywordHits > 0, domain.ConceptMissing)},
	}

	return &domain.Evaluation{
		Score:      score,
		MaxScore:   maxScore,
		Verdict:    domain.VerdictForRatio(score / maxScore),
		Strengths:  strengths,
		Weaknesses: weaknesses,
		IdealAnswer: fmt.Sprintf(
			"An undergraduate-appropriate answer should define %s, explain how it operates within %s, justify the key assumptions, and end with complexity or application remarks.",
			input.Topic, input.Subject),
		ConceptComparison: conceptComparison,
	}, nil
}

func statusWhen(covered bool, otherwise domain.ConceptStatus) domain.ConceptStatus {
	if covered {
		return domain.ConceptCovered
	}
	return otherwise
}
