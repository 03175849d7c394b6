package models

import "time"

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    string  `gorm:"size:50" json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `gorm:"default:0" json:"stock"`
	Description string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
