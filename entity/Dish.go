package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Dish is reference data. Its price is frozen once any order line points at
// it, so historical order totals stay stable across recalculations.
type Dish struct {
	gorm.Model
	Name  string          `gorm:"not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
}
