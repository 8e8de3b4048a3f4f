package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Message   string    `gorm:"not null" json:"mensagem"`
	CreatedAt time.Time `json:"criado_em"`
}
