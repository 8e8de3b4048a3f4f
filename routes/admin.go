package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/config"
	adminControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/admin"
	contactControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/contact"
	orderControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/order"
	pageControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/pages"
	"github.com/lucasmoraes-dev/gamestore-api/middleware"
)

// SetupAdminRoutes registers the "/api/admin/*" endpoints. Everything but
// login sits behind the admin token gate.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.POST("/api/admin/login", adminControllers.Login(cfg))

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateAdmin)
	{
		userMgmt := adminGroup.Group("/usuarios")
		{
			userMgmt.GET("", adminControllers.GetUsers(db))
			userMgmt.GET("/:id", adminControllers.GetUserByID(db))
			userMgmt.POST("/:id/senha", adminControllers.ResetUserPassword(db))
		}

		gameMgmt := adminGroup.Group("/jogos")
		{
			gameMgmt.POST("", adminControllers.CreateGame(db))
			gameMgmt.DELETE("/:id", adminControllers.DeleteGame(db))
			gameMgmt.GET("/export-excel", adminControllers.ExportGamesToExcel(db))
		}

		orderMgmt := adminGroup.Group("/pedidos")
		{
			orderMgmt.GET("", orderControllers.GetAllOrders(db))
			orderMgmt.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
		}

		adminGroup.POST("/paginas", pageControllers.UpsertPage(db))
		adminGroup.GET("/contato", contactControllers.GetMessages(db))
	}
}
