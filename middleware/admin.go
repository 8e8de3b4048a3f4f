package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucasmoraes-dev/gamestore-api/auth"
)

// ValidateAdmin guards the admin panel. Every failure answers 404 so the
// route's existence is never confirmed to unauthenticated probes.
func ValidateAdmin(c *gin.Context) {
	tokenString := c.GetHeader("X-Admin-Token")
	if tokenString == "" {
		tokenString = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	if tokenString == "" {
		c.JSON(http.StatusNotFound, gin.H{"erro": "Recurso não encontrado"})
		c.Abort()
		return
	}

	claims, err := auth.ValidateToken(tokenString)
	if err != nil || claims.Role != auth.RoleAdmin {
		c.JSON(http.StatusNotFound, gin.H{"erro": "Recurso não encontrado"})
		c.Abort()
		return
	}
	c.Next()
}
