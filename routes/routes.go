package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/config"
	"github.com/lucasmoraes-dev/gamestore-api/middleware"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	limiter := middleware.RateLimiter(
		time.Duration(cfg.RateLimitWindowMin)*time.Minute,
		cfg.RateLimitMax,
	)

	SetupAuthRoutes(r, db, cfg, limiter)
	SetupPublicRoutes(r, db, cfg)
	SetupUserRoutes(r, db)
	SetupPaymentRoutes(r, db, cfg, limiter)
	SetupAdminRoutes(r, db, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"erro": "Rota não encontrada",
			"rota": c.Request.URL.Path,
		})
	})
}
