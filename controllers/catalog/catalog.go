package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/models"
)

// GET /api/jogos?genero=&preco_max=
func GetGames(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		genre := c.Query("genero")
		maxPriceStr := c.Query("preco_max")

		query := db.Model(&models.Game{})
		if genre != "" {
			query = query.Where("genre = ?", genre)
		}
		if maxPriceStr != "" {
			maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"erro": "preco_max inválido"})
				return
			}
			query = query.Where("price <= ?", maxPrice)
		}

		games := []models.Game{}
		if err := query.Order("name ASC").Find(&games).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar jogos"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total": len(games),
			"jogos": games,
		})
	}
}

// GET /api/jogos/:id
func GetGameByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
			return
		}

		var game models.Game
		if err := db.First(&game, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"erro": "Jogo não encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar jogo"})
			}
			return
		}
		c.JSON(http.StatusOK, game)
	}
}
