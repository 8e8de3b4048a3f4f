package adminControllers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/auth"
	"github.com/lucasmoraes-dev/gamestore-api/config"
	"github.com/lucasmoraes-dev/gamestore-api/models"
	"github.com/lucasmoraes-dev/gamestore-api/validation"
)

type LoginRequest struct {
	Username string `json:"usuario"`
	Password string `json:"senha"`
}

// POST /api/admin/login — env-sourced credentials, constant-time compare,
// short-lived signed token instead of a decodable prefix check.
func Login(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.AdminUser)) == 1
		passOK := cfg.AdminPass != "" &&
			subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.AdminPass)) == 1
		if !userOK || !passOK {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Credenciais inválidas. Acesso negado."})
			return
		}

		token, err := auth.GenerateAdminToken(req.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao gerar token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sucesso":  true,
			"mensagem": "Login de administrador realizado com sucesso!",
			"token":    token,
		})
	}
}

type userSummary struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"nome"`
	Verified    bool      `json:"verificado"`
	CreatedAt   time.Time `json:"created_at"`
	TotalOrders int64     `json:"total_pedidos"`
	TotalValue  float64   `json:"valor_total"`
}

// GET /api/admin/usuarios — users with aggregated order count and value.
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []userSummary
		if err := db.Model(&models.User{}).
			Select(`users.id, users.email, users.name, users.verified, users.created_at,
				COUNT(orders.id) AS total_orders,
				COALESCE(SUM(orders.total), 0) AS total_value`).
			Joins("LEFT JOIN orders ON orders.user_id = users.id").
			Group("users.id").
			Order("users.created_at DESC").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar usuários"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"usuarios": rows})
	}
}

// GET /api/admin/usuarios/:id — one user plus their orders.
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Usuário não encontrado"})
			return
		}

		orders := []models.Order{}
		if err := db.Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao carregar pedidos"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"usuario": user.Public(), "pedidos": orders})
	}
}

type resetPasswordRequest struct {
	NewPassword string `json:"nova_senha"`
}

// POST /api/admin/usuarios/:id/senha — reset a user's password. Current
// passwords are never readable, only replaceable.
func ResetUserPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req resetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
			return
		}
		if err := validation.Password(req.NewPassword); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao atualizar senha"})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", id).
			Update("password_hash", string(hash))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao atualizar senha"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Usuário não encontrado"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sucesso": true, "mensagem": "Senha atualizada com sucesso"})
	}
}
