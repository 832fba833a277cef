// Package prompt renders the instruction strings sent to the generative
// model. Builders are pure functions; every untrusted free-text input is
// sanitized before interpolation so a student answer cannot break out of its
// quoted block or smuggle fake directives into the prompt.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"examforge/internal/domain"
)

// Sanitize strips characters that could break out of a quoted prompt section:
// double/single quotes, backticks, newlines, tabs and all other control
// characters become a single space, whitespace runs collapse to one space,
// and the result is trimmed.
func Sanitize(s string) string {
	replaced := strings.Map(func(r rune) rune {
		switch {
		case r == '"' || r == '\'' || r == '`':
			return ' '
		case r < 0x20 || r == 0x7f:
			return ' '
		default:
			return r
		}
	}, s)
	return strings.Join(strings.Fields(replaced), " ")
}

// BuildQuestionPrompt renders the question-generation prompt for one practice
// request. The output contract is pinned to a bare JSON object so the reply
// can be parsed without scraping prose.
func BuildQuestionPrompt(req domain.PracticeRequest) string {
	subject := Sanitize(req.Subject)
	topic := Sanitize(req.Topic)
	examStyle := Sanitize(req.ExamStyle)
	if examStyle == "" {
		examStyle = "generic undergrad exam"
	}

	var sb strings.Builder
	sb.WriteString("You are an exam setter for UNDERGRADUATE courses.\n\n")
	fmt.Fprintf(&sb, "Generate %d new exam questions for the subject \"%s\" and topic \"%s\".\n\n",
		req.NumQuestions, subject, topic)
	fmt.Fprintf(&sb, "Question type: %s.\n\n", req.QuestionType)
	fmt.Fprintf(&sb, "Difficulty: %s at UNDERGRAD level (not school, not research).\n\n", req.Difficulty)
	fmt.Fprintf(&sb, "Exam style: %s.\n\n", examStyle)

	if pattern := Sanitize(req.MarksPattern); pattern != "" {
		fmt.Fprintf(&sb, "Marks pattern: %s.\n\n", pattern)
	} else {
		sb.WriteString("No marks pattern given; choose reasonable marks yourself.\n\n")
	}

	if req.StyleSummary != nil {
		// Style transfer only: the model may mimic phrasing, never reuse
		// question text.
		summaryJSON, err := json.Marshal(req.StyleSummary)
		if err == nil {
			fmt.Fprintf(&sb, "Style summary to mimic (without copying actual questions): %s.\n\n", summaryJSON)
		}
	} else {
		sb.WriteString("No previous exam papers provided.\n\n")
	}

	fmt.Fprintf(&sb, "For each question, assign appropriate marks (typically 5 to 15 depending on difficulty and exam style), and give it a unique id of the form \"q<N>\" numbered from q1 to q%d.\n\n", req.NumQuestions)
	sb.WriteString("Return ONLY valid JSON in the following format and nothing else - no prose, no markdown fences:\n\n")
	sb.WriteString(`{
  "questions": [
    {
      "id": "q1",
      "text": "question text here",
      "marks": 10
    }
  ]
}`)
	return sb.String()
}

// BuildEvaluationPrompt renders the answer-evaluation prompt. MaxScore must
// already be defaulted by the caller (domain.DefaultMaxScore when the
// question carries no marks).
func BuildEvaluationPrompt(input domain.EvaluationInput) string {
	subject := Sanitize(input.Subject)
	topic := Sanitize(input.Topic)
	questionText := Sanitize(input.QuestionText)
	studentAnswer := Sanitize(input.StudentAnswer)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an experienced examiner for UNDERGRADUATE exams in %s (topic: %s).\n\n", subject, topic)
	sb.WriteString("Evaluate the student's answer to the following question.\n\n")
	fmt.Fprintf(&sb, "Question:\n\"%s\"\n\n", questionText)
	fmt.Fprintf(&sb, "Student answer:\n\"%s\"\n\n", studentAnswer)
	fmt.Fprintf(&sb, "Assume difficulty level: %s (undergrad level - not school, not research).\n\n", input.Difficulty)
	fmt.Fprintf(&sb, "Maximum marks for this question: %g.\n\n", input.MaxScore)
	sb.WriteString("Your tasks:\n")
	fmt.Fprintf(&sb, "1. Decide a score from 0 to %g (must be a number).\n", input.MaxScore)
	sb.WriteString("2. Explain what the student did well (list 2-3 strengths).\n")
	sb.WriteString("3. Explain what is missing, incorrect, or unclear (list 2-3 weaknesses).\n")
	sb.WriteString("4. Provide a concise but complete IDEAL ANSWER (what a full-marks answer should contain).\n")
	sb.WriteString("5. Identify key concepts and mark each as \"covered\", \"partial\", \"missing\", or \"wrong\" (provide 3-5 concepts).\n\n")
	sb.WriteString("Respond ONLY with JSON in this format and nothing else:\n\n")
	fmt.Fprintf(&sb, `{
  "score": 8,
  "maxScore": %g,
  "verdict": "Mostly correct",
  "strengths": ["strength 1", "strength 2"],
  "weaknesses": ["weakness 1", "weakness 2"],
  "idealAnswer": "The ideal answer should contain...",
  "conceptComparison": [
    {
      "concept": "concept name",
      "status": "covered"
    }
  ]
}`, input.MaxScore)
	return sb.String()
}
