package models

import "time"

type PageContent struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string    `json:"conteudo"`
	UpdatedAt time.Time `json:"atualizado_em"`
}
