package models

import "gorm.io/gorm"

// Buyer represents the purchasing party of a sale
type Buyer struct {
	gorm.Model
	Name  string `gorm:"not null"`
	Phone string `gorm:"not null"`
}
