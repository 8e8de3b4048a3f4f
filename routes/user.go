package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/cart"
	orderControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/order"
	wishlistControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/wishlist"
	"github.com/lucasmoraes-dev/gamestore-api/middleware"
)

// SetupUserRoutes registers the JWT-protected endpoints: cart, wishlist,
// checkout and order history.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/api")
	userGroup.Use(middleware.ValidateToken)
	{
		cartGroup := userGroup.Group("/carrinho")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("", cartControllers.UpdateCartItem(db))
			cartGroup.POST("/checkout", cartControllers.Checkout(db))
			cartGroup.DELETE("/:jogo_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearCart(db))
		}

		wishGroup := userGroup.Group("/favoritos")
		{
			wishGroup.GET("", wishlistControllers.GetWishlist(db))
			wishGroup.POST("/:jogo_id", wishlistControllers.ToggleWishlist(db))
		}

		userGroup.GET("/pedidos", orderControllers.GetUserOrders(db))
	}
}
