package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

func newDishService(t *testing.T) (*DishService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewDishService(repository.NewDishRepository(db)), db
}

func TestCreateDishValidation(t *testing.T) {
	svc, _ := newDishService(t)

	_, err := svc.Create(&DishReq{Name: "  ", Price: dec("10.00")})
	var ve ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(&DishReq{Name: "Burger", Price: dec("0")})
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "price must be greater than zero", ve.Message)

	dish, err := svc.Create(&DishReq{Name: "Burger", Price: dec("10.00")})
	require.NoError(t, err)
	require.True(t, dish.Price.Equal(dec("10.00")))
}

func TestUpdateDishPriceFrozenOnceReferenced(t *testing.T) {
	svc, db := newDishService(t)
	dish, err := svc.Create(&DishReq{Name: "Burger", Price: dec("10.00")})
	require.NoError(t, err)

	// Repricing is fine while nothing references the dish.
	updated, err := svc.Update(dish.ID, &DishReq{Name: "Burger", Price: dec("12.00")})
	require.NoError(t, err)
	require.True(t, updated.Price.Equal(dec("12.00")))

	orders := NewOrderService(db, repository.NewOrderRepository(db))
	mustOrder(t, orders, 1, OrderLineIn{DishID: dish.ID, Quantity: 1})

	_, err = svc.Update(dish.ID, &DishReq{Name: "Burger", Price: dec("99.00")})
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "dish price is frozen once referenced by an order", ve.Message)

	// Renaming is still allowed.
	renamed, err := svc.Update(dish.ID, &DishReq{Name: "Cheeseburger", Price: dec("12.00")})
	require.NoError(t, err)
	require.Equal(t, "Cheeseburger", renamed.Name)
}

func TestDeleteDishReferencedRejected(t *testing.T) {
	svc, db := newDishService(t)
	dish, err := svc.Create(&DishReq{Name: "Burger", Price: dec("10.00")})
	require.NoError(t, err)

	orders := NewOrderService(db, repository.NewOrderRepository(db))
	mustOrder(t, orders, 1, OrderLineIn{DishID: dish.ID, Quantity: 1})

	err = svc.Delete(dish.ID)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "dish is referenced by existing orders", ve.Message)
}

func buildSheet(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	xl := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, xl.SetCellValue("Sheet1", cell, val))
		}
	}
	buf, err := xl.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportExcelCreatesDishesAndSkipsBadRows(t *testing.T) {
	svc, db := newDishService(t)

	buf := buildSheet(t, [][]any{
		{"name", "price"},
		{"Burger", "100.00"},
		{"Soup", "50.50"},
		{"", "10.00"},        // no name
		{"Tea", "not-money"}, // bad price
		{"Free Bread", "0"},  // non-positive price
	})

	count, err := svc.ImportExcel(buf)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	var dishes []entity.Dish
	require.NoError(t, db.Order("name").Find(&dishes).Error)
	require.Len(t, dishes, 2)
	require.Equal(t, "Burger", dishes[0].Name)
	require.True(t, dishes[1].Price.Equal(dec("50.50")))
}

func TestImportExcelRejectsEmptySheet(t *testing.T) {
	svc, _ := newDishService(t)

	buf := buildSheet(t, [][]any{{"name", "price"}})
	_, err := svc.ImportExcel(buf)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
}
