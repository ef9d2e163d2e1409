package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

const (
	minTableNumber = 1
	maxTableNumber = 50
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// ----- DTOs from controller -----

type OrderLineIn struct {
	DishID   uint `json:"dishId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	TableNumber int           `json:"tableNumber" binding:"required"`
	Lines       []OrderLineIn `json:"lines" binding:"required,min=1"`
}

// UpdateOrderReq carries full-replace semantics: a nil Lines leaves the
// existing line set untouched, a non-nil one replaces it wholesale.
type UpdateOrderReq struct {
	TableNumber *int           `json:"tableNumber"`
	Lines       *[]OrderLineIn `json:"lines"`
}

// ----- Validation -----

func validateTableNumber(n int) error {
	if n < minTableNumber || n > maxTableNumber {
		return ValidationError{Field: "tableNumber", Message: "table number must be between 1 and 50"}
	}
	return nil
}

func validateLines(lines []OrderLineIn) error {
	seen := make(map[uint]bool, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return ValidationError{Field: "lines", Message: "quantity must be at least 1"}
		}
		if seen[l.DishID] {
			return ValidationError{Field: "lines", Message: "dishes in an order must not repeat"}
		}
		seen[l.DishID] = true
	}
	return nil
}

// ----- Total recalculation -----

// recalcTotal recomputes the cached total from the order's current lines and
// persists only total_price. It runs inside tx so a reader never sees a line
// set without its matching total.
func (s *OrderService) recalcTotal(tx *gorm.DB, orderID uint) error {
	if _, err := s.Repo.GetOrder(tx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError{Resource: "order"}
		}
		return err
	}
	lines, err := s.Repo.PricedLines(tx, orderID)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return s.Repo.UpdateTotal(tx, orderID, total)
}

// Recalculate re-derives the cached total from the order's current lines.
// The write pipeline calls recalcTotal itself; this is for callers that
// mutate order lines outside of it.
func (s *OrderService) Recalculate(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.recalcTotal(tx, orderID)
	})
}

// insertLines writes one OrderItem per request line, checking each dish
// exists first.
func (s *OrderService) insertLines(tx *gorm.DB, orderID uint, lines []OrderLineIn) error {
	for _, l := range lines {
		var d entity.Dish
		if err := tx.Select("id").First(&d, l.DishID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundError{Resource: "dish"}
			}
			return err
		}
		item := entity.OrderItem{OrderID: orderID, DishID: l.DishID, Quantity: l.Quantity}
		if err := s.Repo.CreateItem(tx, &item); err != nil {
			return err
		}
	}
	return nil
}

// ----- Create -----

func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if err := validateTableNumber(req.TableNumber); err != nil {
		return nil, err
	}
	if len(req.Lines) == 0 {
		return nil, ValidationError{Field: "lines", Message: "an order needs at least one dish"}
	}
	if err := validateLines(req.Lines); err != nil {
		return nil, err
	}

	order := entity.Order{TableNumber: req.TableNumber, Status: entity.StatusPending}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		if err := s.insertLines(tx, order.ID, req.Lines); err != nil {
			return err
		}
		return s.recalcTotal(tx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(order.ID)
}

// ----- Update (full line-set replacement) -----

func (s *OrderService) Update(actor Actor, orderID uint, req *UpdateOrderReq) (*entity.Order, error) {
	// Object-level re-check: only an admin may rewrite an order.
	if !actor.IsAdmin() {
		return nil, ForbiddenError{}
	}
	if _, err := s.Repo.GetOrder(s.DB, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "order"}
		}
		return nil, err
	}
	if req.TableNumber != nil {
		if err := validateTableNumber(*req.TableNumber); err != nil {
			return nil, err
		}
	}
	if req.Lines != nil {
		if err := validateLines(*req.Lines); err != nil {
			return nil, err
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if req.TableNumber != nil {
			if err := s.Repo.UpdateTableNumber(tx, orderID, *req.TableNumber); err != nil {
				return err
			}
		}
		if req.Lines != nil {
			if err := s.Repo.DeleteItems(tx, orderID); err != nil {
				return err
			}
			if err := s.insertLines(tx, orderID, *req.Lines); err != nil {
				return err
			}
			return s.recalcTotal(tx, orderID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(orderID)
}

// ----- Delete -----

func (s *OrderService) Delete(actor Actor, orderID uint) error {
	if !actor.IsAdmin() {
		return ForbiddenError{}
	}
	if _, err := s.Repo.GetOrder(s.DB, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError{Resource: "order"}
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteItems(tx, orderID); err != nil {
			return err
		}
		return s.Repo.DeleteOrder(tx, orderID)
	})
}

// ----- Read -----

func (s *OrderService) List(filter repository.OrderFilter) ([]entity.Order, error) {
	return s.Repo.List(filter)
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "order"}
		}
		return nil, err
	}
	return o, nil
}
