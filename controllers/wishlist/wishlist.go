package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/models"
)

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GET /api/favoritos
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Não autorizado"})
			return
		}

		items := []models.WishlistItem{}
		if err := db.Preload("Game").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar favoritos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": len(items), "favoritos": items})
	}
}

// POST /api/favoritos/:jogo_id toggles the game on or off the wishlist.
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
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

		var game models.Game
		if err := db.First(&game, gameID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Jogo não encontrado"})
			return
		}

		var item models.WishlistItem
		err = db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.WishlistItem{UserID: userID, GameID: game.ID}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao adicionar favorito"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"mensagem": "Adicionado aos favoritos", "favorito": true})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar favorito"})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao remover favorito"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mensagem": "Removido dos favoritos", "favorito": false})
	}
}
