package models

import (
	"time"

	"gorm.io/gorm"
)

// Commission represents the amount owed to an agent for one sale
type Commission struct {
	gorm.Model
	SaleID           uint      `gorm:"not null;index"`
	Sale             *Sale     `gorm:"foreignKey:SaleID"`
	AgentID          uint      `gorm:"not null;index"`
	Agent            *Agent    `gorm:"foreignKey:AgentID"`
	Amount           float64   `gorm:"not null;check:amount >= 0"`
	DateOfCommission time.Time `gorm:"not null"`
}
