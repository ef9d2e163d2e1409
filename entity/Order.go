package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending = "pending"
	StatusReady   = "ready"
	StatusPaid    = "paid"
)

var statusLabels = map[string]string{
	StatusPending: "Pending",
	StatusReady:   "Ready",
	StatusPaid:    "Paid",
}

// ValidStatus reports whether s is one of the three order statuses.
func ValidStatus(s string) bool {
	_, ok := statusLabels[s]
	return ok
}

// StatusLabel returns the human-readable label for a status value.
func StatusLabel(s string) string {
	return statusLabels[s]
}

type Order struct {
	gorm.Model
	TableNumber int    `gorm:"not null" json:"tableNumber"`
	Status      string `gorm:"not null;default:pending" json:"status"`

	// TotalPrice is a cached value, recomputed from Items after every
	// line mutation. See OrderService.recalcTotal.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"totalPrice"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}
