package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	// Derived columns kept for the dashboard; no write path recomputes them.
	Visits    int        `gorm:"default:0" json:"visits"`
	LastVisit *time.Time `json:"last_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
