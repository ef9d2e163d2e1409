package repository

import (
	"tableside/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) CreateBatch(dishes []entity.Dish) error {
	return r.DB.Create(&dishes).Error
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) List() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Order("name").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Save(d *entity.Dish) error {
	return r.DB.Save(d).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Dish{}, id).Error
}

// CountReferences counts order lines pointing at the dish. A referenced dish
// keeps its price and cannot be deleted.
func (r *DishRepository) CountReferences(dishID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).Where("dish_id = ?", dishID).Count(&count).Error
	return count, err
}
