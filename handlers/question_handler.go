package handlers

import (
	"errors"
	"log"
	"net/http"

	"chatbot-backend/models"
	"chatbot-backend/repository"
	"chatbot-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuestionHandler handles HTTP requests for the question table
type QuestionHandler struct {
	questionRepo  *repository.QuestionRepository
	exportService *service.ExportService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionRepo *repository.QuestionRepository, exportService *service.ExportService) *QuestionHandler {
	return &QuestionHandler{
		questionRepo:  questionRepo,
		exportService: exportService,
	}
}

// QuestionRequest represents the request body for creating or updating a question
type QuestionRequest struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	IsSuggestion bool   `json:"is_suggestion"`
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionRepo.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load questions"})
		return
	}

	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, questions)
}

// ListSuggestions handles GET /questions/suggestions
func (h *QuestionHandler) ListSuggestions(c *gin.Context) {
	questions, err := h.questionRepo.ListSuggestions(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list suggestions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load suggestions"})
		return
	}

	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	question := &models.Question{
		Question:     req.Question,
		Answer:       req.Answer,
		IsSuggestion: req.IsSuggestion,
	}

	err := h.questionRepo.Create(c.Request.Context(), question)
	if errors.Is(err, repository.ErrEmptyField) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question and answer are required"})
		return
	}
	if err != nil {
		log.Printf("Failed to create question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create question"})
		return
	}

	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion handles PUT /questions/:id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	question := &models.Question{
		ID:           id,
		Question:     req.Question,
		Answer:       req.Answer,
		IsSuggestion: req.IsSuggestion,
	}

	err = h.questionRepo.Update(c.Request.Context(), question)
	switch {
	case errors.Is(err, repository.ErrEmptyField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question and answer are required"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
	case err != nil:
		log.Printf("Failed to update question %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update question"})
	default:
		c.JSON(http.StatusOK, question)
	}
}

// DeleteQuestion handles DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	err = h.questionRepo.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
	case err != nil:
		log.Printf("Failed to delete question %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete question"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// ExportQuestions handles POST /questions/export
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	if h.exportService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Export storage not configured"})
		return
	}

	result, err := h.exportService.Export(c.Request.Context())
	if err != nil {
		log.Printf("Failed to export questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not export questions"})
		return
	}

	c.JSON(http.StatusOK, result)
}
