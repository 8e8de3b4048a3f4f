package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/config"
	paymentControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/payment"
)

// SetupPaymentRoutes registers the PIX endpoints. The simulate route only
// exists when PIX_DEBUG=true.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, limiter gin.HandlerFunc) {
	client := paymentControllers.NewClient(cfg)

	payment := r.Group("/api/pagamento")
	payment.Use(limiter)
	{
		payment.POST("/pix", paymentControllers.CreatePix(db, cfg, client))
		payment.GET("/pix/:id", paymentControllers.GetPixStatus(db, client))

		if cfg.PixDebug {
			payment.POST("/pix/simular/:id", paymentControllers.SimulatePixConfirmation(db))
		}
	}
}
