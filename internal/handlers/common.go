package handlers

import (
	"errors"
	"net/http"

	"eco-quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// serviceError maps service-layer errors onto the API status codes:
// validation and conflicts are 400, missing resources 404, everything else
// is a generic 500 that never leaks more than the error text.
func serviceError(c *gin.Context, err error, resource string) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error", "detail": err.Error()})
	}
}
