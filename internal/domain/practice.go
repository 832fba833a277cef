package domain

import "strings"

// QuestionType is the kind of question a practice session asks for.
type QuestionType string

const (
	QuestionTypeSubjective QuestionType = "subjective"
	QuestionTypeNumerical  QuestionType = "numerical"
	QuestionTypeMixed      QuestionType = "mixed"
)

// Difficulty is the requested difficulty of a practice session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ConceptStatus tags how well the student's answer covered one key concept.
type ConceptStatus string

const (
	ConceptCovered ConceptStatus = "covered"
	ConceptPartial ConceptStatus = "partial"
	ConceptMissing ConceptStatus = "missing"
	ConceptWrong   ConceptStatus = "wrong"
)

// Verdict labels, coarse grade buckets derived from score/maxScore.
const (
	VerdictFullyCorrect     = "Fully correct"
	VerdictMostlyCorrect    = "Mostly correct"
	VerdictPartiallyCorrect = "Partially correct"
	VerdictIncorrect        = "Incorrect"
	VerdictOffTopic         = "Off-topic"
)

// VerdictForRatio maps a score/maxScore ratio to a verdict label.
// Thresholds are monotonic and partition [0,1] with no gaps.
func VerdictForRatio(ratio float64) string {
	switch {
	case ratio > 0.85:
		return VerdictFullyCorrect
	case ratio > 0.6:
		return VerdictMostlyCorrect
	case ratio > 0.4:
		return VerdictPartiallyCorrect
	default:
		return VerdictIncorrect
	}
}

// IsValidQuestionType reports whether s is a known question type.
func IsValidQuestionType(s string) bool {
	switch QuestionType(strings.ToLower(s)) {
	case QuestionTypeSubjective, QuestionTypeNumerical, QuestionTypeMixed:
		return true
	}
	return false
}

// IsValidDifficulty reports whether s is a known difficulty level.
func IsValidDifficulty(s string) bool {
	switch Difficulty(strings.ToLower(s)) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// StyleSummary aggregates phrasing and marks statistics of previously
// uploaded exam papers. It biases question generation toward the tone of a
// target exam; it never carries actual question text.
type StyleSummary struct {
	CommonVerbs             []string   `json:"commonVerbs"`
	AverageMarksPerQuestion float64    `json:"averageMarksPerQuestion"`
	TypicalDifficulty       Difficulty `json:"typicalDifficulty"`
}

// PracticeRequest configures one practice session. Immutable once submitted.
type PracticeRequest struct {
	Subject      string
	Topic        string
	QuestionType QuestionType
	Difficulty   Difficulty
	NumQuestions int
	ExamStyle    string
	MarksPattern string
	StyleSummary *StyleSummary
}

// Question is one generated practice question. IDs are unique within a
// session and of the form q<N>, 1-indexed.
type Question struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Marks int    `json:"marks,omitempty"`
}

// ConceptComparison is the per-concept coverage tag in an evaluation.
type ConceptComparison struct {
	Concept string        `json:"concept"`
	Status  ConceptStatus `json:"status"`
}

// Evaluation is the structured grading result for one answer.
// Invariant: 0 <= Score <= MaxScore. Created once per evaluation call and
// immutable afterward; re-evaluation replaces it.
type Evaluation struct {
	Score             float64             `json:"score"`
	MaxScore          float64             `json:"maxScore"`
	Verdict           string              `json:"verdict"`
	Strengths         []string            `json:"strengths"`
	Weaknesses        []string            `json:"weaknesses"`
	IdealAnswer       string              `json:"idealAnswer"`
	ConceptComparison []ConceptComparison `json:"conceptComparison"`
}

// EvaluationInput carries everything the evaluator needs to grade one answer.
type EvaluationInput struct {
	Subject       string
	Topic         string
	QuestionText  string
	StudentAnswer string
	Difficulty    Difficulty
	MaxScore      float64
}

// DefaultMaxScore is used when a question carries no marks.
const DefaultMaxScore = 10
