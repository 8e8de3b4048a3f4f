package models

import "time"

type Game struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `gorm:"not null" json:"preco"`
	ImageURL    string  `json:"imagem_url"`
	Genre       string  `json:"genero"`
	Platform    string  `json:"plataforma"`
	AgeRating   string  `json:"classificacao"`
	Stock       int     `gorm:"default:999" json:"estoque"`

	CreatedAt time.Time `json:"criado_em"`
}
