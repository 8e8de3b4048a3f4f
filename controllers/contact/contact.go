package contactControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/models"
	"github.com/lucasmoraes-dev/gamestore-api/validation"
)

type contactRequest struct {
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Message string `json:"mensagem"`
}

// POST /api/contato
func SubmitMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
			return
		}

		email, err := validation.Email(req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		name, err := validation.Name(req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		message, err := validation.Message(req.Message)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}

		msg := models.ContactMessage{Name: name, Email: email, Message: message}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao enviar mensagem"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"mensagem": "Mensagem enviada com sucesso!"})
	}
}

// GET /api/admin/contato
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs := []models.ContactMessage{}
		if err := db.Order("created_at DESC").Find(&msgs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar mensagens"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"mensagens": msgs})
	}
}
