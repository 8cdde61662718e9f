package models

import "gorm.io/gorm"

// Seller represents the owner of a listed property
type Seller struct {
	gorm.Model
	Name  string `gorm:"not null"`
	Phone string `gorm:"not null"`
}
