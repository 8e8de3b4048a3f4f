package models

import "time"

// Session records an issued token so stale logins can be purged. Expired
// rows are removed by a daily cleanup in main.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"usuario_id"`
	ExpiresAt time.Time `json:"expira_em"`
	CreatedAt time.Time `json:"criado_em"`
}
