package middleware

import (
	"net/http"
	"strings"

	"eco-quiz-backend/internal/models"
	"eco-quiz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// Protect validates the bearer token and attaches the resolved account
// (credential stripped by the json tags) to the request context.
func Protect(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, no token"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		user, err := auth.ResolveToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, invalid or expired token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the account Protect attached to the context.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(userContextKey).(*models.User)
}

func TeacherOnly() gin.HandlerFunc {
	return RoleCheck(models.RoleTeacher)
}

func StudentOnly() gin.HandlerFunc {
	return RoleCheck(models.RoleStudent)
}

// RoleCheck gates a route to the given roles. It must run after Protect.
func RoleCheck(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		for _, role := range allowedRoles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied: insufficient permissions"})
	}
}
