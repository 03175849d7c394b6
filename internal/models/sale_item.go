package models

import "time"

const (
	SaleItemService = "service"
	SaleItemProduct = "product"
)

// SaleItem carries denormalized name/price copies so catalog edits never
// rewrite historical sales.
type SaleItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	SaleID uint `gorm:"index" json:"sale_id"`

	ItemID   uint   `json:"item_id"`
	ItemType string `gorm:"size:10" json:"item_type"`

	Name     string  `gorm:"size:100" json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `gorm:"default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}
