package handlers

import (
	"net/http"

	"eco-quiz-backend/internal/middleware"
	"eco-quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		serviceError(c, err, "user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.Service.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		serviceError(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	current := middleware.CurrentUser(c)

	user, err := h.Service.GetProfile(c.Request.Context(), current.ID)
	if err != nil {
		serviceError(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
