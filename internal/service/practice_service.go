// Package service implements the application use cases on top of the domain
// ports. Handlers call services; services call the generator, evaluator and
// cache adapters.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"examforge/internal/config"
	"examforge/internal/domain"
	"examforge/internal/dto"
	"examforge/internal/logger"
	"examforge/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// batchEvalConcurrency caps concurrent model calls per batch request.
const batchEvalConcurrency = 4

// PaperFile describes one uploaded exam paper. Only metadata is analyzed;
// file contents are never stored.
type PaperFile struct {
	Name string
	Size int64
}

// PracticeService is the application-facing API of the practice domain.
type PracticeService interface {
	GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	EvaluateAnswer(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluationResponse, error)
	EvaluateBatch(ctx context.Context, req *dto.EvaluateBatchRequest) (*dto.EvaluateBatchResponse, error)
	AnalyzePapers(ctx context.Context, files []PaperFile) (*dto.UploadPapersResponse, error)
}

type practiceService struct {
	generator domain.QuestionGenerator
	evaluator domain.AnswerEvaluator
	cache     domain.Cache
	cacheCfg  config.CacheConfig
}

// NewPracticeService wires the practice use cases.
func NewPracticeService(
	generator domain.QuestionGenerator,
	evaluator domain.AnswerEvaluator,
	cache domain.Cache,
	cacheCfg config.CacheConfig,
) PracticeService {
	return &practiceService{
		generator: generator,
		evaluator: evaluator,
		cache:     cache,
		cacheCfg:  cacheCfg,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// evaluationKey derives a stable cache key from everything that influences
// the grading outcome. The question id is deliberately excluded so that the
// same question text graded under different ids shares one entry.
func evaluationKey(input domain.EvaluationInput) string {
	h := sha256.New()
	h.Write([]byte(strings.Join([]string{
		input.Subject,
		input.Topic,
		input.QuestionText,
		input.StudentAnswer,
		string(input.Difficulty),
		strconv.FormatFloat(input.MaxScore, 'f', -1, 64),
	}, "\x1f")))
	return "evaluation:" + hex.EncodeToString(h.Sum(nil))
}

func (s *practiceService) GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
	log := logger.Get()

	domainReq := domain.PracticeRequest{
		Subject:      strings.TrimSpace(req.Subject),
		Topic:        strings.TrimSpace(req.Topic),
		QuestionType: domain.QuestionType(strings.ToLower(req.QuestionType)),
		Difficulty:   domain.Difficulty(strings.ToLower(req.Difficulty)),
		NumQuestions: req.NumQuestions,
		ExamStyle:    strings.TrimSpace(req.ExamStyle),
		MarksPattern: strings.TrimSpace(req.MarksPattern),
		StyleSummary: req.StyleSummary.ToDomainStyleSummary(),
	}

	questions, err := s.generator.Generate(ctx, domainReq)
	if err != nil {
		return nil, err
	}

	sessionID := util.NewULID()
	resp := &dto.GenerateQuestionsResponse{
		SessionID: sessionID,
		Questions: dto.FromDomainQuestions(questions),
	}

	payload, err := json.Marshal(resp.Questions)
	if err != nil {
		return nil, domain.NewInternalError("failed to serialize session", err)
	}
	if err := s.cache.Set(ctx, sessionKey(sessionID), string(payload), s.cacheCfg.SessionTTL); err != nil {
		// The questions are still usable; the session just cannot be re-fetched.
		log.Warn("failed to store session", zap.String("sessionId", sessionID), zap.Error(err))
	}

	return resp, nil
}

func (s *practiceService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	payload, err := s.cache.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewNotFoundError("session not found or expired")
		}
		return nil, domain.NewInternalError("failed to load session", err)
	}

	var questions []dto.Question
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, domain.NewInternalError("failed to decode stored session", err)
	}

	return &dto.SessionResponse{SessionID: sessionID, Questions: questions}, nil
}

func (s *practiceService) EvaluateAnswer(ctx context.Context, req *dto.EvaluateAnswerRequest) (*dto.EvaluationResponse, error) {
	log := logger.Get()

	maxScore := float64(req.Marks)
	if maxScore <= 0 {
		maxScore = domain.DefaultMaxScore
	}

	input := domain.EvaluationInput{
		Subject:       strings.TrimSpace(req.Subject),
		Topic:         strings.TrimSpace(req.Topic),
		QuestionText:  strings.TrimSpace(req.QuestionText),
		StudentAnswer: req.StudentAnswer,
		Difficulty:    domain.Difficulty(strings.ToLower(req.Difficulty)),
		MaxScore:      maxScore,
	}

	key := evaluationKey(input)
	if payload, err := s.cache.Get(ctx, key); err == nil {
		var cached dto.EvaluationResponse
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			cached.QuestionID = req.QuestionID
			return &cached, nil
		}
		log.Warn("discarding undecodable cached evaluation", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		log.Warn("evaluation cache read failed", zap.Error(err))
	}

	eval, err := s.evaluator.Evaluate(ctx, input)
	if err != nil {
		return nil, err
	}

	resp := dto.FromDomainEvaluation(req.QuestionID, eval)

	// Cache without the question id; it is reattached on read.
	cacheable := *resp
	cacheable.QuestionID = ""
	if payload, err := json.Marshal(&cacheable); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.cacheCfg.EvaluationTTL); err != nil {
			log.Warn("evaluation cache write failed", zap.Error(err))
		}
	}

	return resp, nil
}

func (s *practiceService) EvaluateBatch(ctx context.Context, req *dto.EvaluateBatchRequest) (*dto.EvaluateBatchResponse, error) {
	results := make([]dto.BatchResult, len(req.Answers))

	var g errgroup.Group
	g.SetLimit(batchEvalConcurrency)
	for i := range req.Answers {
		g.Go(func() error {
			answer := &req.Answers[i]
			eval, err := s.EvaluateAnswer(ctx, answer)
			if err != nil {
				results[i] = dto.BatchResult{
					QuestionID: answer.QuestionID,
					Error:      publicErrorMessage(err),
				}
				return nil
			}
			results[i] = dto.BatchResult{QuestionID: answer.QuestionID, Evaluation: eval}
			return nil
		})
	}
	// Workers report failures per item, so Wait never returns an error.
	_ = g.Wait()

	return &dto.EvaluateBatchResponse{Results: results}, nil
}

func (s *practiceService) AnalyzePapers(_ context.Context, files []PaperFile) (*dto.UploadPapersResponse, error) {
	if len(files) == 0 {
		return nil, domain.ValidationErrors{{Field: "files", Message: "at least one file is required"}}
	}

	var totalSize int64
	names := make([]string, 0, len(files))
	for _, f := range files {
		totalSize += f.Size
		names = append(names, f.Name)
	}
	sort.Strings(names)

	// Deterministic stub. Real paper parsing is out of scope; the summary is
	// derived from file metadata only so repeated uploads agree.
	avgMarks := float64(5 + int(totalSize/1024)%6)
	difficulty := domain.DifficultyEasy
	switch {
	case avgMarks >= 8:
		difficulty = domain.DifficultyHard
	case avgMarks >= 6:
		difficulty = domain.DifficultyMedium
	}

	return &dto.UploadPapersResponse{
		StyleSummary: dto.StyleSummary{
			CommonVerbs:             []string{"explain", "derive", "compare", "state"},
			AverageMarksPerQuestion: avgMarks,
			TypicalDifficulty:       string(difficulty),
		},
		FileCount: len(files),
		FileNames: names,
	}, nil
}

// publicErrorMessage reduces an evaluation error to a message safe to embed
// in a batch result. Provider detail stays in the logs.
func publicErrorMessage(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.CodeUpstreamCall, domain.CodeInternal:
			return "evaluation failed"
		default:
			return domainErr.Message
		}
	}
	return "evaluation failed"
}
