package handlers

import (
	"net/http"

	"eco-quiz-backend/internal/middleware"
	"eco-quiz-backend/internal/repository"
	"eco-quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var input service.CreateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teacher := middleware.CurrentUser(c)
	quiz, err := h.Service.CreateQuiz(c.Request.Context(), teacher.ID, input)
	if err != nil {
		serviceError(c, err, "quiz")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quiz": quiz})
}

func (h *QuizHandler) CreateAIQuiz(c *gin.Context) {
	var input service.AIQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teacher := middleware.CurrentUser(c)
	quiz, err := h.Service.CreateAIQuiz(c.Request.Context(), teacher.ID, input)
	if err != nil {
		serviceError(c, err, "quiz")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quiz": quiz})
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	filter := repository.QuizFilter{
		Topic:      c.Query("topic"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	if createdBy := c.Query("createdBy"); createdBy != "" {
		id, err := primitive.ObjectIDFromHex(createdBy)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid createdBy filter"})
			return
		}
		filter.CreatedBy = &id
	}

	quizzes, err := h.Service.ListQuizzes(c.Request.Context(), filter)
	if err != nil {
		serviceError(c, err, "quiz")
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Service.GetQuizForAttempt(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err, "quiz")
		return
	}
	c.JSON(http.StatusOK, quiz)
}
