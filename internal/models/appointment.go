package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	// Date and Time are plain strings ("2006-01-02" / "15:04"); the by-date
	// read path is an exact string match against the date column.
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status        string `gorm:"size:20;default:'beklemede'" json:"status"`
	PaymentStatus string `gorm:"size:10" json:"payment_status"`
	PaymentMethod string `gorm:"size:10" json:"payment_method"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
