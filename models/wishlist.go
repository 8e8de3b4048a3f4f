package models

import "time"

// WishlistItem is unique per (user, game); toggling removes the row.
type WishlistItem struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_wishlist_user_game;not null" json:"usuario_id"`
	GameID uint `gorm:"uniqueIndex:idx_wishlist_user_game;not null" json:"jogo_id"`
	Game   Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"jogo"`

	AddedAt time.Time `gorm:"autoCreateTime" json:"adicionado_em"`
}
