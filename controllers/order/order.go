package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusPaid):
		return models.OrderStatusPaid, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("status de pedido inválido")
	}
}

// GET /api/pedidos — caller's own orders, newest first.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user_id")
		userID, ok := v.(uint)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Não autorizado"})
			return
		}

		orders := []models.Order{}
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar pedidos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": len(orders), "pedidos": orders})
	}
}

// GET /api/admin/pedidos
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []struct {
			models.Order
			Email string `json:"email"`
			Name  string `json:"nome"`
		}
		if err := db.Model(&models.Order{}).
			Select("orders.*, users.email AS email, users.name AS name").
			Joins("INNER JOIN users ON users.id = orders.user_id").
			Order("orders.created_at DESC").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar pedidos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"pedidos": rows})
	}
}

// PUT /api/admin/pedidos/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao atualizar status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Pedido não encontrado"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err == nil {
			BroadcastOrderEvent("status_pedido", &order)
		}
		c.JSON(http.StatusOK, gin.H{"mensagem": "Status do pedido atualizado"})
	}
}
