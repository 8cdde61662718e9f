package models

import (
	"time"

	"gorm.io/gorm"
)

// MonthlyCommission is a per-agent rollup of commission amounts for one
// calendar month, populated by the report command.
type MonthlyCommission struct {
	gorm.Model
	AgentID uint      `gorm:"not null;index"`
	Agent   *Agent    `gorm:"foreignKey:AgentID"`
	Month   time.Time `gorm:"not null"`
	Amount  float64   `gorm:"not null;check:amount >= 0"`
}
