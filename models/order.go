package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pendente"
	OrderStatusPaid      OrderStatus = "pago"
	OrderStatusShipped   OrderStatus = "enviado"
	OrderStatusDelivered OrderStatus = "entregue"
	OrderStatusCancelled OrderStatus = "cancelado"
)

type Order struct {
	ID       uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint        `gorm:"index;not null" json:"usuario_id"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"itens"`
	Total    float64     `gorm:"not null" json:"valor_total"`
	Status   OrderStatus `gorm:"type:VARCHAR(20);default:'pendente'" json:"status"`
	OrderRef string      `gorm:"uniqueIndex" json:"referencia"`

	// Provider identifier once a payment preference exists for this order.
	// Nullable so unpaid orders never collide on the unique index.
	PaymentID *string `gorm:"uniqueIndex" json:"pagamento_id"`

	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint `gorm:"index" json:"pedido_id"`
	GameID  uint `json:"jogo_id"`

	// Snapshotted at checkout; must not track later catalog price changes.
	GameName  string  `json:"nome_jogo"`
	UnitPrice float64 `gorm:"not null" json:"preco_unitario"`
	Quantity  int     `gorm:"not null" json:"quantidade"`
}
