package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucasmoraes-dev/gamestore-api/auth"
)

// ValidateToken guards user routes. On success the user id and email are
// stored in the gin context.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token de autenticação ausente"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims, err := auth.ValidateToken(tokenString)
	if err != nil || claims.Role != auth.RoleUser {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido ou expirado"})
		c.Abort()
		return
	}

	c.Set("user_id", claims.UserID)
	c.Set("user_email", claims.Email)
	c.Next()
}
