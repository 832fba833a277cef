package quizgen

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"examforge/internal/domain"
)

var marksRe = regexp.MustCompile(`\d+`)

// questionTemplates keys a verb to a phrasing. The %s slots are topic then
// subject.
var questionTemplates = map[string]string{
	"explain": "Explain the key ideas behind %s in the context of %s.",
	"derive":  "Derive the main result associated with %s and state the assumptions involved (%s).",
	"compare": "Compare %s with a closely related approach in %s, noting trade-offs.",
	"state":   "State and justify the conditions under which %s applies within %s.",
	"discuss": "Discuss the practical significance of %s in %s with a worked example.",
	"define":  "Define %s precisely and illustrate it with a short example from %s.",
}

var defaultVerbs = []string{"explain", "derive", "compare", "discuss"}

var numericalSuffix = " Include a numerical illustration with concrete values."

// staticQuestionGenerator implements domain.QuestionGenerator without a model
// call. It is the fallback when no provider credential is configured and is
// fully deterministic for a given request.
type staticQuestionGenerator struct{}

// NewStaticQuestionGenerator creates the deterministic fallback generator.
func NewStaticQuestionGenerator() domain.QuestionGenerator {
	return &staticQuestionGenerator{}
}

func (g *staticQuestionGenerator) Generate(_ context.Context, req domain.PracticeRequest) ([]domain.Question, error) {
	verbs := defaultVerbs
	if req.StyleSummary != nil && len(req.StyleSummary.CommonVerbs) > 0 {
		verbs = normalizeVerbs(req.StyleSummary.CommonVerbs)
	}
	marks := marksFromPattern(req.MarksPattern, req.StyleSummary)

	questions := make([]domain.Question, 0, req.NumQuestions)
	for i := 0; i < req.NumQuestions; i++ {
		verb := verbs[i%len(verbs)]
		template, ok := questionTemplates[verb]
		if !ok {
			template = questionTemplates["explain"]
		}
		text := fmt.Sprintf(template, req.Topic, req.Subject)
		if req.QuestionType == domain.QuestionTypeNumerical ||
			(req.QuestionType == domain.QuestionTypeMixed && i%2 == 1) {
			text += numericalSuffix
		}
		questions = append(questions, domain.Question{
			ID:    fmt.Sprintf("q%d", i+1),
			Text:  text,
			Marks: marks[i%len(marks)],
		})
	}
	return questions, nil
}

// marksFromPattern pulls the mark values out of a free-form pattern such as
// "3 questions of 5 marks, 2 of 10". Falls back to the style summary average,
// then to the default.
func marksFromPattern(pattern string, summary *domain.StyleSummary) []int {
	var marks []int
	for _, m := range marksRe.FindAllString(pattern, -1) {
		if v, err := strconv.Atoi(m); err == nil && v > 0 && v <= 100 {
			marks = append(marks, v)
		}
	}
	if len(marks) > 0 {
		return marks
	}
	if summary != nil && summary.AverageMarksPerQuestion > 0 {
		return []int{int(summary.AverageMarksPerQuestion)}
	}
	return []int{domain.DefaultMaxScore}
}

func normalizeVerbs(verbs []string) []string {
	out := make([]string, 0, len(verbs))
	for _, v := range verbs {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultVerbs
	}
	return out
}
