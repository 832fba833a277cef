package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"examforge/internal/domain"
	"examforge/internal/dto"
	"examforge/internal/middleware"
	"examforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPracticeService struct {
	GenerateQuestionsFunc func(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error)
	GetSessionFunc        func(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	EvaluateAnswerFunc    func(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluationResponse, error)
	EvaluateBatchFunc     func(ctx context.Context, req *dto.EvaluateBatchRequest) (*dto.EvaluateBatchResponse, error)
	AnalyzePapersFunc     func(ctx context.Context, files []service.PaperFile) (*dto.UploadPapersResponse, error)
}

func (m *mockPracticeService) GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
	return m.GenerateQuestionsFunc(ctx, req)
}

func (m *mockPracticeService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	return m.GetSessionFunc(ctx, sessionID)
}

func (m *mockPracticeService) EvaluateAnswer(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluationResponse, error) {
	return m.EvaluateAnswerFunc(ctx, req)
}

func (m *mockPracticeService) EvaluateBatch(ctx context.Context, req *dto.EvaluateBatchRequest) (*dto.EvaluateBatchResponse, error) {
	return m.EvaluateBatchFunc(ctx, req)
}

func (m *mockPracticeService) AnalyzePapers(ctx context.Context, files []service.PaperFile) (*dto.UploadPapersResponse, error) {
	return m.AnalyzePapersFunc(ctx, files)
}

func newTestApp(svc service.PracticeService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api := app.Group("/api")
	NewPracticeHandler(svc).RegisterRoutes(api)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func validEvaluateBody() dto.EvaluateAnswerRequest {
	return dto.EvaluateAnswerRequest{
		Subject:       "Data Structures",
		Topic:         "AVL Trees",
		QuestionID:    "q1",
		QuestionText:  "Explain rotations in AVL trees.",
		StudentAnswer: "Rotations restore the height balance invariant.",
		Difficulty:    "medium",
		Marks:         10,
	}
}

func TestEvaluateAnswer_Success(t *testing.T) {
	svc := &mockPracticeService{
		EvaluateAnswerFunc: func(_ context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluationResponse, error) {
			return &dto.EvaluationResponse{
				QuestionID:  req.QuestionID,
				Score:       8,
				MaxScore:    10,
				Verdict:     domain.VerdictMostlyCorrect,
				Strengths:   []string{"Good coverage."},
				Weaknesses:  []string{"No example."},
				IdealAnswer: "Rotations rebalance the tree after insertion or deletion.",
				ConceptComparison: []dto.ConceptComparison{
					{Concept: "Definition", Status: "covered"},
				},
			}, nil
		},
	}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/api/practice/evaluate", validEvaluateBody())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.EvaluationResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "q1", body.QuestionID)
	assert.Equal(t, float64(8), body.Score)
	assert.Equal(t, domain.VerdictMostlyCorrect, body.Verdict)
}

func TestEvaluateAnswer_EmptyAnswerRejected(t *testing.T) {
	called := false
	svc := &mockPracticeService{
		EvaluateAnswerFunc: func(context.Context, *dto.EvaluateAnswerRequest) (*dto.EvaluationResponse, error) {
			called = true
			return nil, nil
		},
	}
	app := newTestApp(svc)

	body := validEvaluateBody()
	body.StudentAnswer = "   "
	resp := postJSON(t, app, "/api/practice/evaluate", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, called, "service must not be reached on validation failure")

	var errBody struct {
		Error   string                   `json:"error"`
		Details []domain.ValidationError `json:"details"`
	}
	decodeBody(t, resp, &errBody)
	require.Len(t, errBody.Details, 1)
	assert.Equal(t, "studentAnswer", errBody.Details[0].Field)
}

func TestEvaluateAnswer_ServerErrorIsGeneric(t *testing.T) {
	svc := &mockPracticeService{
		EvaluateAnswerFunc: func(context.Context, *dto.EvaluateAnswerRequest) (*dto.EvaluationResponse, error) {
			return nil, domain.NewUpstreamCallError(errors.New("401 from provider, key sk-secret rejected"))
		},
	}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/api/practice/evaluate", validEvaluateBody())
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.ErrorID)
	assert.NotContains(t, body.Error, "sk-secret")
	assert.NotContains(t, body.Error, "401")
}

func TestGenerateQuestions_Success(t *testing.T) {
	svc := &mockPracticeService{
		GenerateQuestionsFunc: func(_ context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
			assert.Equal(t, 3, req.NumQuestions)
			return &dto.GenerateQuestionsResponse{
				SessionID: "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
				Questions: []dto.Question{
					{ID: "q1", Text: "Explain AVL rotations.", Marks: 10},
					{ID: "q2", Text: "Derive the height bound.", Marks: 10},
					{ID: "q3", Text: "Compare AVL and red-black trees.", Marks: 10},
				},
			}, nil
		},
	}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/api/practice/questions", dto.GenerateQuestionsRequest{
		Subject:      "Data Structures",
		Topic:        "AVL Trees",
		QuestionType: "subjective",
		Difficulty:   "medium",
		NumQuestions: 3,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.GenerateQuestionsResponse
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.SessionID)
	assert.Len(t, body.Questions, 3)
}

func TestGenerateQuestions_InvalidCount(t *testing.T) {
	app := newTestApp(&mockPracticeService{})

	resp := postJSON(t, app, "/api/practice/questions", dto.GenerateQuestionsRequest{
		Subject:      "Data Structures",
		Topic:        "AVL Trees",
		QuestionType: "subjective",
		Difficulty:   "medium",
		NumQuestions: 50,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetSession_NotFound(t *testing.T) {
	svc := &mockPracticeService{
		GetSessionFunc: func(context.Context, string) (*dto.SessionResponse, error) {
			return nil, domain.NewNotFoundError("session not found or expired")
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/practice/sessions/unknown", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "session not found or expired", body.Error)
	assert.Empty(t, body.ErrorID)
}

func TestEvaluateBatch_KeepsOrder(t *testing.T) {
	svc := &mockPracticeService{
		EvaluateBatchFunc: func(_ context.Context, req *dto.EvaluateBatchRequest) (*dto.EvaluateBatchResponse, error) {
			results := make([]dto.BatchResult, len(req.Answers))
			for i, a := range req.Answers {
				results[i] = dto.BatchResult{
					QuestionID: a.QuestionID,
					Evaluation: &dto.EvaluationResponse{Score: 5, MaxScore: 10, Verdict: domain.VerdictPartiallyCorrect},
				}
			}
			return &dto.EvaluateBatchResponse{Results: results}, nil
		},
	}
	app := newTestApp(svc)

	first := validEvaluateBody()
	second := validEvaluateBody()
	second.QuestionID = "q2"
	resp := postJSON(t, app, "/api/practice/evaluate-batch", dto.EvaluateBatchRequest{
		Answers: []dto.EvaluateAnswerRequest{first, second},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.EvaluateBatchResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Results, 2)
	assert.Equal(t, "q1", body.Results[0].QuestionID)
	assert.Equal(t, "q2", body.Results[1].QuestionID)
}

func TestUploadPapers(t *testing.T) {
	svc := &mockPracticeService{
		AnalyzePapersFunc: func(_ context.Context, files []service.PaperFile) (*dto.UploadPapersResponse, error) {
			if len(files) == 0 {
				return nil, domain.ValidationErrors{{Field: "files", Message: "at least one file is required"}}
			}
			return &dto.UploadPapersResponse{
				StyleSummary: dto.StyleSummary{CommonVerbs: []string{"explain"}, AverageMarksPerQuestion: 7, TypicalDifficulty: "medium"},
				FileCount:    len(files),
			}, nil
		},
	}
	app := newTestApp(svc)

	t.Run("Success", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("files", "2023-final.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 dummy"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/practice/papers", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.UploadPapersResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, 1, body.FileCount)
	})

	t.Run("NoMultipartBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/practice/papers", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
