package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/models"
)

type CreateGameRequest struct {
	Name        string  `json:"nome" binding:"required"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco" binding:"required,gt=0"`
	ImageURL    string  `json:"imagem_url"`
	Genre       string  `json:"genero"`
	Platform    string  `json:"plataforma"`
	AgeRating   string  `json:"classificacao"`
	Stock       *int    `json:"estoque"`
}

// POST /api/admin/jogos
func CreateGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos: nome e preco (> 0) são obrigatórios"})
			return
		}

		game := models.Game{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			Genre:       req.Genre,
			Platform:    req.Platform,
			AgeRating:   req.AgeRating,
			Stock:       999,
		}
		if req.Stock != nil {
			game.Stock = *req.Stock
		}

		if err := db.Create(&game).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao adicionar jogo"})
			return
		}
		c.JSON(http.StatusCreated, game)
	}
}

// DELETE /api/admin/jogos/:id — cart, wishlist and order-item rows cascade.
func DeleteGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var game models.Game
		if err := db.First(&game, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Jogo não encontrado"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("game_id = ?", game.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("game_id = ?", game.ID).Delete(&models.WishlistItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&game).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao remover jogo"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mensagem": "Jogo removido com sucesso"})
	}
}
