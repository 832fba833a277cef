// Package quizgen generates practice question sets through a generative
// model, with strict validation of the model's JSON reply.
package quizgen

import (
	"context"
	"fmt"

	"examforge/internal/domain"
	"examforge/internal/logger"
	"examforge/internal/parser"
	"examforge/internal/prompt"

	"go.uber.org/zap"
)

// llmQuestionGenerator implements domain.QuestionGenerator.
type llmQuestionGenerator struct {
	client domain.ModelClient
}

// NewLLMQuestionGenerator creates a model-backed question generator.
func NewLLMQuestionGenerator(client domain.ModelClient) domain.QuestionGenerator {
	return &llmQuestionGenerator{client: client}
}

func (g *llmQuestionGenerator) Generate(ctx context.Context, req domain.PracticeRequest) ([]domain.Question, error) {
	l := logger.Get()

	p := prompt.BuildQuestionPrompt(req)
	l.Debug("Generating questions with model",
		zap.String("subject", req.Subject),
		zap.String("topic", req.Topic),
		zap.Int("num_questions", req.NumQuestions))

	raw, err := g.client.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	l.Debug("Raw model response received", zap.String("raw_response", raw))

	jsonText, err := parser.ExtractJSONObject(raw)
	if err != nil {
		l.Error("Model reply contained no JSON object", zap.Error(err), zap.String("raw_response", raw))
		return nil, err
	}

	questions, err := parser.ParseQuestionList(jsonText)
	if err != nil {
		l.Error("Generated question list failed validation",
			zap.Error(err),
			zap.String("extracted_json", jsonText))
		return nil, err
	}

	if len(questions) != req.NumQuestions {
		l.Error("Model returned wrong question count",
			zap.Int("requested", req.NumQuestions),
			zap.Int("got", len(questions)))
		return nil, domain.NewInvalidGenerationError(
			fmt.Sprintf("requested %d questions, got %d", req.NumQuestions, len(questions)))
	}

	// Model-chosen ids are untrusted (duplicates happen); renumber them
	// canonically so a session always holds q1..qN.
	for i := range questions {
		questions[i].ID = fmt.Sprintf("q%d", i+1)
		if questions[i].Marks <= 0 {
			questions[i].Marks = domain.DefaultMaxScore
		}
	}

	return questions, nil
}
