package models

import "time"

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	Date          string  `gorm:"size:10" json:"date"`
	Total         float64 `json:"total"`
	PaymentMethod string  `gorm:"size:10" json:"payment_method"`
	Type          string  `gorm:"size:10" json:"type"`

	Items []SaleItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
