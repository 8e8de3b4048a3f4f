package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/config"
	catalogControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/catalog"
	contactControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/contact"
	orderControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/order"
	pageControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/pages"
)

// SetupPublicRoutes registers the unauthenticated surface: catalog, page
// content, contact form, the live order feed and the health check.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	api := r.Group("/api")
	{
		api.GET("/jogos", catalogControllers.GetGames(db))
		api.GET("/jogos/:id", catalogControllers.GetGameByID(db))

		api.GET("/paginas/:slug", pageControllers.GetPage(db))
		api.POST("/contato", contactControllers.SubmitMessage(db))

		api.GET("/pedidos/ws", orderControllers.OrderWebSocketHandler)

		api.GET("/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":   "Servidor rodando",
				"ambiente": cfg.Env,
				"porta":    cfg.Port,
			})
		})
	}
}
