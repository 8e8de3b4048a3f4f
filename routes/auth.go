package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/config"
	authControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/auth"
)

// SetupAuthRoutes registers the "/api/auth/*" endpoints, rate limited as a
// brute-force guard.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, limiter gin.HandlerFunc) {
	authGroup := r.Group("/api/auth")
	authGroup.Use(limiter)
	{
		authGroup.POST("/registro", authControllers.Register(db, cfg))
		authGroup.POST("/login", authControllers.Login(db, cfg))
	}
}
