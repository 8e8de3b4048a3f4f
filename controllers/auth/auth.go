package authControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/auth"
	"github.com/lucasmoraes-dev/gamestore-api/config"
	"github.com/lucasmoraes-dev/gamestore-api/models"
	"github.com/lucasmoraes-dev/gamestore-api/validation"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"nome"`
	Password string `json:"senha"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// POST /api/auth/registro
func Register(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
			return
		}

		email, err := validation.Email(req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		if err := validation.Password(req.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}
		name, err := validation.Name(req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"erro": "Email já cadastrado. Faça login ou use outro email.",
			})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao registrar. Tente novamente."})
			return
		}

		user := models.User{
			Email:        email,
			Name:         name,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao registrar. Tente novamente."})
			return
		}

		token, err := issueSession(db, &user, cfg.JWTExpireDays)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao registrar. Tente novamente."})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"mensagem": "Registro realizado com sucesso!",
			"token":    token,
			"usuario":  user.Public(),
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Email e senha são obrigatórios"})
			return
		}

		// Same payload whether the account is missing or the password is
		// wrong, so accounts cannot be enumerated.
		var user models.User
		if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Email ou senha incorretos"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Email ou senha incorretos"})
			return
		}

		token, err := issueSession(db, &user, cfg.JWTExpireDays)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao fazer login. Tente novamente."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mensagem": "Login realizado com sucesso!",
			"token":    token,
			"usuario":  user.Public(),
		})
	}
}

func issueSession(db *gorm.DB, user *models.User, expireDays int) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, expireDays)
	if err != nil {
		return "", err
	}
	if expireDays <= 0 {
		expireDays = 7
	}
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(expireDays) * 24 * time.Hour),
	}
	if err := db.Create(&session).Error; err != nil {
		return "", err
	}
	return token, nil
}
