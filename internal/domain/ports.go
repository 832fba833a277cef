package domain

import "context"

// ModelClient is the port to a generative model provider. Implementations
// send one prompt and return the raw text reply. The SDK and REST adapters
// both satisfy it; the caller selects one at startup, never at call time.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnswerEvaluator grades one free-text answer into a structured Evaluation.
// Implementations: the model-backed evaluator and the heuristic fallback.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, input EvaluationInput) (*Evaluation, error)
}

// QuestionGenerator produces a question set for a practice request.
type QuestionGenerator interface {
	Generate(ctx context.Context, req PracticeRequest) ([]Question, error)
}
