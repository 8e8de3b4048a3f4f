package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	orderControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/order"
	"github.com/lucasmoraes-dev/gamestore-api/models"
)

var errEmptyCart = errors.New("carrinho vazio")

// Checkout turns the caller's cart into an order. Stock check, stock
// deduction, order creation and cart clearing run in one transaction so a
// partial failure never leaves an order without items.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Não autorizado"})
			return
		}

		order, err := placeOrder(db, userID)
		if err != nil {
			if errors.Is(err, errEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"erro": "Carrinho vazio"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}

		orderControllers.BroadcastOrderEvent("novo_pedido", order)
		c.JSON(http.StatusCreated, order)
	}
}

func placeOrder(db *gorm.DB, userID uint) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		// Read inside the transaction so the clearing delete below can never
		// drop a row added after the snapshot.
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return errEmptyCart
		}

		var total float64
		var orderItems []models.OrderItem

		for _, item := range items {
			var game models.Game
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&game, item.GameID).Error; err != nil {
				return err
			}

			if game.Stock < item.Quantity {
				return errors.New("Estoque insuficiente para: " + game.Name)
			}
			game.Stock -= item.Quantity
			if err := tx.Save(&game).Error; err != nil {
				return err
			}

			total += game.Price * float64(item.Quantity)

			// Unit price is frozen here; later catalog changes must not
			// affect this order.
			orderItems = append(orderItems, models.OrderItem{
				GameID:    game.ID,
				GameName:  game.Name,
				UnitPrice: game.Price,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{
			UserID:   userID,
			Items:    orderItems,
			Total:    total,
			Status:   models.OrderStatusPending,
			OrderRef: time.Now().Format("20060102150405") + "-" + uuid.NewString(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
