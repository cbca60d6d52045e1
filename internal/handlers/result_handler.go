package handlers

import (
	"net/http"

	"eco-quiz-backend/internal/middleware"
	"eco-quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

func (h *ResultHandler) SubmitAttempt(c *gin.Context) {
	var input struct {
		Answers []service.AnswerSubmission `json:"answers"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answers are required in an array format"})
		return
	}

	student := middleware.CurrentUser(c)
	outcome, err := h.Service.SubmitAttempt(c.Request.Context(), student, c.Param("quizId"), input.Answers)
	if err != nil {
		serviceError(c, err, "quiz")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "quiz attempted successfully",
		"score":     outcome.Score,
		"total":     outcome.Total,
		"ecoPoints": outcome.EcoPoints,
		"level":     outcome.Level,
		"result":    outcome.Result,
	})
}

func (h *ResultHandler) GetMyResults(c *gin.Context) {
	student := middleware.CurrentUser(c)

	results, err := h.Service.GetMyResults(c.Request.Context(), student.ID)
	if err != nil {
		serviceError(c, err, "results")
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) GetQuizResults(c *gin.Context) {
	results, err := h.Service.GetQuizResults(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		serviceError(c, err, "quiz")
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) GetLeaderboard(c *gin.Context) {
	leaderboard, err := h.Service.GetLeaderboard(c.Request.Context())
	if err != nil {
		serviceError(c, err, "leaderboard")
		return
	}
	c.JSON(http.StatusOK, leaderboard)
}
