package pageControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucasmoraes-dev/gamestore-api/models"
)

// GET /api/paginas/:slug — public read; missing pages answer empty content.
func GetPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var page models.PageContent
		if err := db.Where("slug = ?", slug).First(&page).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"conteudo": ""})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar página"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"conteudo": page.Content})
	}
}

type upsertPageRequest struct {
	Slug    string `json:"slug" binding:"required"`
	Content string `json:"conteudo"`
}

// POST /api/admin/paginas — upsert by slug.
func UpsertPage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req upsertPageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Slug é obrigatório"})
			return
		}

		page := models.PageContent{Slug: req.Slug, Content: req.Content}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).Create(&page).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao atualizar página"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sucesso": true, "mensagem": "Página atualizada com sucesso!"})
	}
}
