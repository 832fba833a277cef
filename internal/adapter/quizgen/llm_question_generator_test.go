package quizgen

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"examforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModelClient struct {
	lastPrompt string
	response   string
	err        error
}

func (s *stubModelClient) Generate(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

func practiceRequest(n int) domain.PracticeRequest {
	return domain.PracticeRequest{
		Subject:      "Data Structures",
		Topic:        "AVL Trees",
		QuestionType: domain.QuestionTypeSubjective,
		Difficulty:   domain.DifficultyMedium,
		NumQuestions: n,
	}
}

func TestLLMQuestionGenerator_Generate(t *testing.T) {
	client := &stubModelClient{response: `Here you go:
` + "```json" + `
{"questions": [
	{"id": "qA", "text": "Explain rotations.", "marks": 10},
	{"id": "qA", "text": "Derive the height bound.", "marks": 15},
	{"id": "q9", "text": "Compare with red-black trees."}
]}
` + "```"}
	g := NewLLMQuestionGenerator(client)

	questions, err := g.Generate(context.Background(), practiceRequest(3))
	require.NoError(t, err)
	require.Len(t, questions, 3)

	// IDs are canonical q1..qN regardless of what the model invented.
	for i, q := range questions {
		assert.Equal(t, fmt.Sprintf("q%d", i+1), q.ID)
		assert.NotEmpty(t, q.Text)
	}
	assert.Equal(t, 10, questions[0].Marks)
	assert.Equal(t, 15, questions[1].Marks)
	// Missing marks default.
	assert.Equal(t, domain.DefaultMaxScore, questions[2].Marks)

	assert.Contains(t, client.lastPrompt, "Generate 3 new exam questions")
}

func TestLLMQuestionGenerator_WrongCount(t *testing.T) {
	client := &stubModelClient{response: `{"questions": [{"id": "q1", "text": "Only one."}]}`}
	g := NewLLMQuestionGenerator(client)

	_, err := g.Generate(context.Background(), practiceRequest(3))

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInvalidGeneration, domainErr.Code)
}

func TestLLMQuestionGenerator_UpstreamErrorPropagates(t *testing.T) {
	client := &stubModelClient{err: domain.NewUpstreamCallError(errors.New("boom"))}
	g := NewLLMQuestionGenerator(client)

	_, err := g.Generate(context.Background(), practiceRequest(2))
	assert.True(t, domain.IsRetryable(err))
}

func TestLLMQuestionGenerator_NoJSON(t *testing.T) {
	client := &stubModelClient{response: "no structured output, sorry"}
	g := NewLLMQuestionGenerator(client)

	_, err := g.Generate(context.Background(), practiceRequest(2))

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeMalformedResponse, domainErr.Code)
}
