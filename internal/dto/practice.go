// Package dto defines the request and response bodies of the HTTP API.
package dto

import "examforge/internal/domain"

// GenerateQuestionsRequest configures one practice session.
// @Description Practice session configuration
type GenerateQuestionsRequest struct {
	Subject      string        `json:"subject"`
	Topic        string        `json:"topic"`
	QuestionType string        `json:"questionType"`
	Difficulty   string        `json:"difficulty"`
	NumQuestions int           `json:"numQuestions"`
	ExamStyle    string        `json:"examStyle,omitempty"`
	MarksPattern string        `json:"marksPattern,omitempty"`
	StyleSummary *StyleSummary `json:"styleSummary,omitempty"`
}

// Question is one generated practice question.
type Question struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Marks int    `json:"marks,omitempty"`
}

// GenerateQuestionsResponse carries the generated question set and the
// session id under which it is stored.
type GenerateQuestionsResponse struct {
	SessionID string     `json:"sessionId"`
	Questions []Question `json:"questions"`
}

// SessionResponse is a re-fetch of a stored question set.
type SessionResponse struct {
	SessionID string     `json:"sessionId"`
	Questions []Question `json:"questions"`
}

// EvaluateAnswerRequest asks for one free-text answer to be graded.
// @Description Answer evaluation request
type EvaluateAnswerRequest struct {
	Subject       string `json:"subject"`
	Topic         string `json:"topic"`
	QuestionID    string `json:"questionId"`
	QuestionText  string `json:"questionText"`
	StudentAnswer string `json:"studentAnswer"`
	Difficulty    string `json:"difficulty"`
	Marks         int    `json:"marks,omitempty"`
}

// ConceptComparison tags how well the answer covered one key concept.
type ConceptComparison struct {
	Concept string `json:"concept"`
	Status  string `json:"status"`
}

// EvaluationResponse is the structured grading result for one answer.
type EvaluationResponse struct {
	QuestionID        string              `json:"questionId,omitempty"`
	Score             float64             `json:"score"`
	MaxScore          float64             `json:"maxScore"`
	Verdict           string              `json:"verdict"`
	Strengths         []string            `json:"strengths"`
	Weaknesses        []string            `json:"weaknesses"`
	IdealAnswer       string              `json:"idealAnswer"`
	ConceptComparison []ConceptComparison `json:"conceptComparison"`
}

// EvaluateBatchRequest grades several answers in one call.
type EvaluateBatchRequest struct {
	Answers []EvaluateAnswerRequest `json:"answers"`
}

// BatchResult is the per-answer outcome of a batch evaluation. Exactly one
// of Evaluation and Error is set.
type BatchResult struct {
	QuestionID Identifier          `json:"questionId"`
	Evaluation *EvaluationResponse `json:"evaluation,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// Identifier is a question id within a batch result.
type Identifier = string

// EvaluateBatchResponse carries one result per submitted answer, in order.
type EvaluateBatchResponse struct {
	Results []BatchResult `json:"results"`
}

// StyleSummary aggregates phrasing and marks statistics of uploaded papers.
type StyleSummary struct {
	CommonVerbs             []string `json:"commonVerbs"`
	AverageMarksPerQuestion float64  `json:"averageMarksPerQuestion"`
	TypicalDifficulty       string   `json:"typicalDifficulty"`
}

// UploadPapersResponse is the (stubbed) analysis of uploaded exam papers.
type UploadPapersResponse struct {
	StyleSummary StyleSummary `json:"styleSummary"`
	FileCount    int          `json:"fileCount"`
	FileNames    []string     `json:"fileNames"`
}

// ErrorResponse represents an error in the API response. ErrorID is set for
// server-side failures so clients can quote it when reporting problems.
type ErrorResponse struct {
	Error   string `json:"error"`
	ErrorID string `json:"errorId,omitempty"`
}

// FromDomainEvaluation maps a domain evaluation to its response body.
func FromDomainEvaluation(questionID string, eval *domain.Evaluation) *EvaluationResponse {
	resp := &EvaluationResponse{
		QuestionID:  questionID,
		Score:       eval.Score,
		MaxScore:    eval.MaxScore,
		Verdict:     eval.Verdict,
		Strengths:   eval.Strengths,
		Weaknesses:  eval.Weaknesses,
		IdealAnswer: eval.IdealAnswer,
	}
	for _, c := range eval.ConceptComparison {
		resp.ConceptComparison = append(resp.ConceptComparison, ConceptComparison{
			Concept: c.Concept,
			Status:  string(c.Status),
		})
	}
	return resp
}

// FromDomainQuestions maps generated questions to their response body.
func FromDomainQuestions(questions []domain.Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, Question{ID: q.ID, Text: q.Text, Marks: q.Marks})
	}
	return out
}

// ToDomainStyleSummary maps an optional style summary into the domain.
func (s *StyleSummary) ToDomainStyleSummary() *domain.StyleSummary {
	if s == nil {
		return nil
	}
	return &domain.StyleSummary{
		CommonVerbs:             s.CommonVerbs,
		AverageMarksPerQuestion: s.AverageMarksPerQuestion,
		TypicalDifficulty:       domain.Difficulty(s.TypicalDifficulty),
	}
}
