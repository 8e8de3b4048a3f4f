package models

import "time"

type CartItem struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint `gorm:"index;not null" json:"usuario_id"`
	GameID   uint `gorm:"not null" json:"jogo_id"`
	Game     Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"jogo"`
	Quantity int  `gorm:"default:1" json:"quantidade"`

	AddedAt time.Time `gorm:"autoCreateTime" json:"adicionado_em"`
}
