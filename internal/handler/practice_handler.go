// Package handler exposes the practice use cases over HTTP.
package handler

import (
	"examforge/internal/dto"
	"examforge/internal/service"
	"examforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PracticeHandler serves the practice endpoints.
type PracticeHandler struct {
	service service.PracticeService
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc service.PracticeService) *PracticeHandler {
	return &PracticeHandler{service: svc}
}

// RegisterRoutes mounts the practice endpoints under the given router.
func (h *PracticeHandler) RegisterRoutes(router fiber.Router) {
	practice := router.Group("/practice")
	practice.Post("/questions", h.GenerateQuestions)
	practice.Get("/sessions/:id", h.GetSession)
	practice.Post("/evaluate", h.EvaluateAnswer)
	practice.Post("/evaluate-batch", h.EvaluateBatch)
	practice.Post("/papers", h.UploadPapers)
}

// GenerateQuestions godoc
// @Summary Generate a practice question set
// @Description Builds a set of exam-style questions for the given subject and topic and stores it under a new session id.
// @Tags practice
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Session configuration"
// @Success 200 {object} dto.GenerateQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /practice/questions [post]
func (h *PracticeHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.ValidateGenerateQuestionsRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.GenerateQuestions(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSession godoc
// @Summary Re-fetch a stored question set
// @Tags practice
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /practice/sessions/{id} [get]
func (h *PracticeHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.service.GetSession(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EvaluateAnswer godoc
// @Summary Grade one free-text answer
// @Description Grades the student answer against the question and returns a structured evaluation.
// @Tags practice
// @Accept json
// @Produce json
// @Param request body dto.EvaluateAnswerRequest true "Answer to grade"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /practice/evaluate [post]
func (h *PracticeHandler) EvaluateAnswer(c *fiber.Ctx) error {
	var req dto.EvaluateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.ValidateEvaluateAnswerRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.EvaluateAnswer(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EvaluateBatch godoc
// @Summary Grade several answers in one call
// @Tags practice
// @Accept json
// @Produce json
// @Param request body dto.EvaluateBatchRequest true "Answers to grade"
// @Success 200 {object} dto.EvaluateBatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/evaluate-batch [post]
func (h *PracticeHandler) EvaluateBatch(c *fiber.Ctx) error {
	var req dto.EvaluateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.ValidateEvaluateBatchRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.EvaluateBatch(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UploadPapers godoc
// @Summary Analyze uploaded exam papers
// @Description Accepts past papers as multipart files and returns a style summary. File contents are not stored.
// @Tags practice
// @Accept mpfd
// @Produce json
// @Param files formData file true "Past exam papers"
// @Success 200 {object} dto.UploadPapersResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /practice/papers [post]
func (h *PracticeHandler) UploadPapers(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Expected a multipart form upload")
	}

	files := make([]service.PaperFile, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		files = append(files, service.PaperFile{Name: fh.Filename, Size: fh.Size})
	}

	resp, err := h.service.AnalyzePapers(c.Context(), files)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
