package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tableside/entity"
	"tableside/repository"
)

var (
	adminActor  = Actor{ID: 1, Role: entity.RoleAdmin}
	chefActor   = Actor{ID: 2, Role: entity.RoleChef}
	waiterActor = Actor{ID: 3, Role: entity.RoleWaiter}
)

// openTestDB gives each test its own in-memory sqlite database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Dish{}, &entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db)), db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustDish(t *testing.T, db *gorm.DB, name, price string) *entity.Dish {
	t.Helper()
	d := &entity.Dish{Name: name, Price: dec(price)}
	require.NoError(t, db.Create(d).Error)
	return d
}

func mustOrder(t *testing.T, svc *OrderService, table int, lines ...OrderLineIn) *entity.Order {
	t.Helper()
	o, err := svc.Create(&CreateOrderReq{TableNumber: table, Lines: lines})
	require.NoError(t, err)
	return o
}
