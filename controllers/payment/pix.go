package paymentControllers

import (
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/config"
	orderControllers "github.com/lucasmoraes-dev/gamestore-api/controllers/order"
	"github.com/lucasmoraes-dev/gamestore-api/models"
)

type CreatePixRequest struct {
	Amount      float64 `json:"valor"`
	Description string  `json:"descricao"`
	UserID      *uint   `json:"usuarioId"`
	OrderID     *uint   `json:"pedidoId"`
}

// POST /api/pagamento/pix
func CreatePix(db *gorm.DB, cfg config.Config, client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePixRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Dados inválidos"})
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"erro":     "Valor inválido",
				"detalhes": "Valor deve ser maior que 0",
			})
			return
		}
		if !client.Configured() {
			c.JSON(http.StatusBadRequest, gin.H{
				"erro":     "Mercado Pago não configurado",
				"detalhes": "Configure MERCADO_PAGO_ACCESS_TOKEN no .env",
			})
			return
		}

		description := req.Description
		if description == "" {
			description = "Compra na GameStore"
		}

		pref, err := client.CreatePreference(c.Request.Context(), req.Amount, description, req.UserID, cfg.FrontendURL)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrProviderTimeout) {
				status = http.StatusGatewayTimeout
			}
			c.JSON(status, gin.H{"erro": "Erro ao criar preferência Mercado Pago"})
			log.Printf("pagamento: criação de preferência falhou: %v", err)
			return
		}

		// Best effort: a QR rendering failure must not fail the payment.
		qrDataURL := renderPixQR(cfg.PixKey)

		payment := models.PixPayment{
			OrderID:      req.OrderID,
			UserID:       req.UserID,
			PixPaymentID: pref.ID,
			Amount:       req.Amount,
			Status:       models.PixStatusPending,
			QRCode:       qrDataURL,
			Description:  description,
		}
		if err := db.Create(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao salvar pagamento"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"sucesso":      true,
			"mensagem":     "QR Code PIX gerado com sucesso",
			"pixPaymentId": pref.ID,
			"linkCheckout": pref.InitPoint,
			"valor":        req.Amount,
			"qrCode":       qrDataURL,
			"instrucoes": gin.H{
				"metodo": "PIX",
				"passo1": "Escaneie o QR Code com seu app bancário",
				"passo2": "Confirme a transferência",
				"passo3": "Seu pagamento será confirmado em até 5 minutos",
			},
		})
	}
}

// GET /api/pagamento/pix/:id
func GetPixStatus(db *gorm.DB, client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		pixPaymentID := c.Param("id")

		// The local row is the sole source of truth for "pago", so an
		// unconfigured provider only skips the existence check.
		providerKnown := false
		if client.Configured() {
			providerKnown = true
			if _, err := client.GetPreference(c.Request.Context(), pixPaymentID); err != nil {
				if !errors.Is(err, ErrPreferenceNotFound) {
					status := http.StatusInternalServerError
					if errors.Is(err, ErrProviderTimeout) {
						status = http.StatusGatewayTimeout
					}
					c.JSON(status, gin.H{"erro": "Erro ao consultar status do pagamento"})
					return
				}
				providerKnown = false
			}
		}

		var payment models.PixPayment
		err := db.Where("pix_payment_id = ?", pixPaymentID).First(&payment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if !providerKnown {
				c.JSON(http.StatusNotFound, gin.H{
					"erro":         "Pagamento não encontrado",
					"pixPaymentId": pixPaymentID,
				})
				return
			}
			// Provider knows it but we never stored it; report pending.
			c.JSON(http.StatusOK, gin.H{
				"pixPaymentId": pixPaymentID,
				"status":       models.PixStatusPending,
				"pago":         false,
				"mensagem":     "Pagamento ainda não foi recebido. Escaneie o QR Code e complete a transferência.",
			})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar pagamento"})
			return
		}

		// Only the local row's explicit confirmation flips pago; the
		// preference object never carries a final payment state.
		paid := payment.Status == models.PixStatusConfirmed
		mensagem := "Pagamento ainda não foi recebido. Escaneie o QR Code e complete a transferência."
		if paid {
			mensagem = "Seu pagamento foi confirmado! Muito obrigado pela compra!"
		}

		c.JSON(http.StatusOK, gin.H{
			"pixPaymentId": payment.PixPaymentID,
			"status":       payment.Status,
			"valor":        payment.Amount,
			"pago":         paid,
			"criadoEm":     payment.CreatedAt,
			"mensagem":     mensagem,
		})
	}
}

// SimulatePixConfirmation flips a payment to confirmed. Registered only when
// PIX_DEBUG=true; absent from production routing entirely. The transition is
// one-way and idempotent.
func SimulatePixConfirmation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pixPaymentID := c.Param("id")

		var payment models.PixPayment
		if err := db.Where("pix_payment_id = ?", pixPaymentID).First(&payment).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"erro":         "Pagamento não encontrado",
				"pixPaymentId": pixPaymentID,
			})
			return
		}

		if payment.Status != models.PixStatusConfirmed {
			now := time.Now()
			payment.Status = models.PixStatusConfirmed
			payment.ConfirmedAt = &now
			if err := db.Save(&payment).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao simular pagamento"})
				return
			}
			confirmLinkedOrder(db, &payment)
		}

		c.JSON(http.StatusOK, gin.H{
			"sucesso":      true,
			"mensagem":     "Pagamento simulado com sucesso",
			"pixPaymentId": pixPaymentID,
			"status":       models.PixStatusConfirmed,
		})
	}
}

func confirmLinkedOrder(db *gorm.DB, payment *models.PixPayment) {
	if payment.OrderID == nil {
		return
	}
	var order models.Order
	if err := db.Preload("Items").First(&order, *payment.OrderID).Error; err != nil {
		return
	}
	updates := map[string]interface{}{
		"status":     models.OrderStatusPaid,
		"payment_id": payment.PixPaymentID,
	}
	if err := db.Model(&order).Updates(updates).Error; err != nil {
		log.Printf("pagamento: falha ao marcar pedido %d como pago: %v", order.ID, err)
		return
	}
	order.Status = models.OrderStatusPaid
	order.PaymentID = &payment.PixPaymentID
	orderControllers.BroadcastOrderEvent("pagamento_confirmado", &order)
}

func renderPixQR(pixKey string) string {
	png, err := qrcode.Encode(pixKey, qrcode.High, 300)
	if err != nil {
		log.Printf("pagamento: falha ao gerar QR Code: %v", err)
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
