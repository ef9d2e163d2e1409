package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tableside/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(db *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := db.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithItems loads an order and its lines for responses.
func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderFilter narrows List by table number and/or status.
type OrderFilter struct {
	TableNumber *int
	Status      string
}

func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, error) {
	db := r.DB.Preload("Items")
	if f.TableNumber != nil {
		db = db.Where("table_number = ?", *f.TableNumber)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	var orders []entity.Order
	err := db.Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateTableNumber(tx *gorm.DB, orderID uint, table int) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("table_number", table).Error
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// UpdateTotal persists only the cached total_price.
func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_price", total).Error
}

// DeleteOrder removes the order row for good. Lines go through DeleteItems
// in the same transaction.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
}

// ---------------- Order lines ----------------

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// DeleteItems hard-deletes every line of the order. Full-replace updates
// re-insert the same (order, dish) pairs, so soft deletes would trip the
// unique index.
func (r *OrderRepository) DeleteItems(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}

// PricedLine is one order line joined with the live dish price.
type PricedLine struct {
	Price    decimal.Decimal
	Quantity int
}

// PricedLines returns the order's current lines with dish prices, for total
// recalculation inside the caller's transaction.
func (r *OrderRepository) PricedLines(tx *gorm.DB, orderID uint) ([]PricedLine, error) {
	var lines []PricedLine
	err := tx.Table("order_items").
		Select("dishes.price AS price, order_items.quantity AS quantity").
		Joins("JOIN dishes ON dishes.id = order_items.dish_id").
		Where("order_items.order_id = ? AND order_items.deleted_at IS NULL", orderID).
		Scan(&lines).Error
	return lines, err
}

// ---------------- Revenue ----------------

// PaidTotals returns the cached totals of every paid order.
func (r *OrderRepository) PaidTotals() ([]decimal.Decimal, error) {
	var totals []decimal.Decimal
	err := r.DB.Model(&entity.Order{}).
		Where("status = ?", entity.StatusPaid).
		Pluck("total_price", &totals).Error
	return totals, err
}
