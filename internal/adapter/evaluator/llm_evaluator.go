// Package evaluator holds the two AnswerEvaluator implementations: the
// model-backed grader and the deterministic heuristic fallback used when no
// model credential is configured.
package evaluator

import (
	"context"
	"fmt"

	"examforge/internal/domain"
	"examforge/internal/logger"
	"examforge/internal/parser"
	"examforge/internal/prompt"

	"go.uber.org/zap"
)

// llmEvaluator implements domain.AnswerEvaluator by delegating grading to a
// generative model and validating its structured reply.
type llmEvaluator struct {
	client domain.ModelClient
}

// NewLLMEvaluator creates a model-backed answer evaluator.
func NewLLMEvaluator(client domain.ModelClient) domain.AnswerEvaluator {
	return &llmEvaluator{client: client}
}

func (e *llmEvaluator) Evaluate(ctx context.Context, input domain.EvaluationInput) (*domain.Evaluation, error) {
	l := logger.Get()

	if input.MaxScore <= 0 {
		input.MaxScore = domain.DefaultMaxScore
	}

	p := prompt.BuildEvaluationPrompt(input)
	l.Debug("Evaluating answer with model",
		zap.String("subject", input.Subject),
		zap.String("topic", input.Topic),
		zap.Float64("max_score", input.MaxScore))

	raw, err := e.client.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	l.Debug("Raw model response received", zap.String("raw_response", raw))

	jsonText, err := parser.ExtractJSONObject(raw)
	if err != nil {
		l.Error("Model reply contained no JSON object", zap.Error(err), zap.String("raw_response", raw))
		return nil, err
	}

	eval, err := parser.ParseEvaluation(jsonText)
	if err != nil {
		l.Error("Model evaluation failed schema validation",
			zap.Error(err),
			zap.String("extracted_json", jsonText))
		return nil, err
	}

	// The prompt pins the scoring contract; an out-of-range score or a
	// rewritten maximum is a contract violation, not something to clamp away.
	if eval.MaxScore != input.MaxScore {
		l.Error("Model rewrote maxScore",
			zap.Float64("expected", input.MaxScore),
			zap.Float64("got", eval.MaxScore))
		return nil, domain.NewInvalidEvaluationError(
			fmt.Sprintf("maxScore %g does not match requested maximum %g", eval.MaxScore, input.MaxScore))
	}
	if eval.Score < 0 || eval.Score > eval.MaxScore {
		l.Error("Model returned out-of-range score",
			zap.Float64("score", eval.Score),
			zap.Float64("max_score", eval.MaxScore))
		return nil, domain.NewInvalidEvaluationError(
			fmt.Sprintf("score %g is outside [0, %g]", eval.Score, eval.MaxScore))
	}

	return eval, nil
}
