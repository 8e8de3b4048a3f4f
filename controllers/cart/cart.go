package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/models"
	"github.com/lucasmoraes-dev/gamestore-api/validation"
)

type CartItemInput struct {
	GameID   uint `json:"jogo_id" binding:"required"`
	Quantity int  `json:"quantidade"`
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GET /api/carrinho
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Não autorizado"})
			return
		}

		items := []models.CartItem{}
		if err := db.Preload("Game").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar carrinho"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": len(items), "itens": items})
	}
}

// POST /api/carrinho
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Não autorizado"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}
		if err := validation.Quantity(input.Quantity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}

		var game models.Game
		if err := db.First(&game, input.GameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"erro": "Jogo não existe"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao validar jogo"})
			}
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND game_id = ?", userID, input.GameID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				UserID:   userID,
				GameID:   game.ID,
				Quantity: input.Quantity,
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao adicionar ao carrinho"})
				return
			}
			c.JSON(http.StatusCreated, item)
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar item do carrinho"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao atualizar carrinho"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/carrinho/:jogo_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Não autorizado"})
			return
		}
		gameID, err := strconv.Atoi(c.Param("jogo_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
			return
		}

		result := db.Where("user_id = ? AND game_id = ?", userID, gameID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao remover item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Item não encontrado no carrinho"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mensagem": "Item removido do carrinho"})
	}
}

// DELETE /api/carrinho
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Não autorizado"})
			return
		}
		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao limpar carrinho"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mensagem": "Carrinho limpo"})
	}
}
