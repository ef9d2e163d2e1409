package services

import (
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

type DishService struct {
	Repo *repository.DishRepository
}

func NewDishService(repo *repository.DishRepository) *DishService {
	return &DishService{Repo: repo}
}

type DishReq struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

func validateDish(name string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if !price.IsPositive() {
		return ValidationError{Field: "price", Message: "price must be greater than zero"}
	}
	return nil
}

func (s *DishService) List() ([]entity.Dish, error) {
	return s.Repo.List()
}

func (s *DishService) Create(req *DishReq) (*entity.Dish, error) {
	if err := validateDish(req.Name, req.Price); err != nil {
		return nil, err
	}
	dish := &entity.Dish{Name: strings.TrimSpace(req.Name), Price: req.Price}
	if err := s.Repo.Create(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

// Update renames a dish and, while no order line references it yet, reprices
// it. A referenced dish keeps its price so past order totals never drift.
func (s *DishService) Update(id uint, req *DishReq) (*entity.Dish, error) {
	dish, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "dish"}
		}
		return nil, err
	}
	if err := validateDish(req.Name, req.Price); err != nil {
		return nil, err
	}
	if !dish.Price.Equal(req.Price) {
		refs, err := s.Repo.CountReferences(id)
		if err != nil {
			return nil, err
		}
		if refs > 0 {
			return nil, ValidationError{Field: "price", Message: "dish price is frozen once referenced by an order"}
		}
		dish.Price = req.Price
	}
	dish.Name = strings.TrimSpace(req.Name)
	if err := s.Repo.Save(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError{Resource: "dish"}
		}
		return err
	}
	refs, err := s.Repo.CountReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ValidationError{Field: "id", Message: "dish is referenced by existing orders"}
	}
	return s.Repo.Delete(id)
}

// ImportExcel loads dishes from a spreadsheet: one dish per row after the
// header, column A name, column B price. Malformed rows are skipped rather
// than failing the whole upload. Returns the number of dishes created.
func (s *DishService) ImportExcel(f io.Reader) (int, error) {
	xl, err := excelize.OpenReader(f)
	if err != nil {
		return 0, ValidationError{Field: "file", Message: "cannot parse Excel file"}
	}
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		return 0, ValidationError{Field: "file", Message: "sheet must have a header and at least one data row"}
	}

	var dishes []entity.Dish
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		price, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if name == "" || err != nil || !price.IsPositive() {
			continue
		}
		dishes = append(dishes, entity.Dish{Name: name, Price: price})
	}
	if len(dishes) == 0 {
		return 0, ValidationError{Field: "file", Message: "no valid rows found"}
	}

	if err := s.Repo.CreateBatch(dishes); err != nil {
		return 0, err
	}
	return len(dishes), nil
}
