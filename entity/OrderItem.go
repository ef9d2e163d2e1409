package entity

import (
	"gorm.io/gorm"
)

// OrderItem is one (dish, quantity) line of an order. A dish may appear at
// most once per order.
type OrderItem struct {
	gorm.Model
	OrderID  uint `gorm:"uniqueIndex:uq_order_dish;not null" json:"orderId"`
	DishID   uint `gorm:"uniqueIndex:uq_order_dish;not null" json:"dishId"`
	Dish     Dish `json:"-"`
	Quantity int  `gorm:"not null;default:1" json:"quantity"`
}
