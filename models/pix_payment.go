package models

import "time"

type PixStatus string

const (
	PixStatusPending   PixStatus = "pendente"
	PixStatusConfirmed PixStatus = "confirmado"
	PixStatusCancelled PixStatus = "cancelado"
)

// PixPayment mirrors a provider payment preference. The local Status column
// is the only signal ever trusted for "paid"; the provider preference object
// carries no final payment state.
type PixPayment struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      *uint     `json:"pedido_id"`
	UserID       *uint     `json:"usuario_id"`
	PixPaymentID string    `gorm:"uniqueIndex;not null" json:"pix_payment_id"`
	Amount       float64   `gorm:"not null" json:"valor"`
	Status       PixStatus `gorm:"type:VARCHAR(20);default:'pendente'" json:"status"`
	QRCode       string    `json:"qr_code"`
	Description  string    `json:"descricao"`

	CreatedAt   time.Time  `json:"criado_em"`
	ConfirmedAt *time.Time `json:"confirmado_em"`
}
