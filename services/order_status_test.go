package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tableside/entity"
)

func TestChangeStatusChefCannotSetPaid(t *testing.T) {
	svc, db := newOrderService(t)
	burger := mustDish(t, db, "Burger", "100.00")
	order := mustOrder(t, svc, 1, OrderLineIn{DishID: burger.ID, Quantity: 1})

	_, err := svc.ChangeStatus(chefActor, order.ID, entity.StatusPaid)

	var fe ForbiddenError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "a chef may not set status to Paid", fe.Error())

	fresh, err := svc.Detail(order.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, fresh.Status, "denied change must leave the status alone")
}

func TestChangeStatusAdminSetsPaid(t *testing.T) {
	svc, db := newOrderService(t)
	burger := mustDish(t, db, "Burger", "100.00")
	order := mustOrder(t, svc, 1, OrderLineIn{DishID: burger.ID, Quantity: 1})

	label, err := svc.ChangeStatus(adminActor, order.ID, entity.StatusPaid)
	require.NoError(t, err)
	require.Equal(t, "Paid", label)

	fresh, err := svc.Detail(order.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusPaid, fresh.Status)
}

func TestChangeStatusChefSetsReady(t *testing.T) {
	svc, db := newOrderService(t)
	burger := mustDish(t, db, "Burger", "100.00")
	order := mustOrder(t, svc, 1, OrderLineIn{DishID: burger.ID, Quantity: 1})

	label, err := svc.ChangeStatus(chefActor, order.ID, entity.StatusReady)
	require.NoError(t, err)
	require.Equal(t, "Ready", label)
}

func TestChangeStatusSuperuserChefSetsPaid(t *testing.T) {
	svc, db := newOrderService(t)
	burger := mustDish(t, db, "Burger", "100.00")
	order := mustOrder(t, svc, 1, OrderLineIn{DishID: burger.ID, Quantity: 1})

	// The superuser flag makes admin a superset of the stored role.
	super := Actor{ID: 9, Role: entity.RoleChef, Superuser: true}
	label, err := svc.ChangeStatus(super, order.ID, entity.StatusPaid)
	require.NoError(t, err)
	require.Equal(t, "Paid", label)
}

func TestChangeStatusInvalidValue(t *testing.T) {
	svc, db := newOrderService(t)
	burger := mustDish(t, db, "Burger", "100.00")
	order := mustOrder(t, svc, 1, OrderLineIn{DishID: burger.ID, Quantity: 1})

	for _, actor := range []Actor{adminActor, chefActor} {
		_, err := svc.ChangeStatus(actor, order.ID, "not_a_real_status")
		var ve ValidationError
		require.ErrorAs(t, err, &ve, "invalid status is rejected for %s too", actor.Role)
		require.Equal(t, "invalid status", ve.Message)
	}
}

func TestChangeStatusNotFound(t *testing.T) {
	svc, _ := newOrderService(t)
	_, err := svc.ChangeStatus(adminActor, 777, entity.StatusReady)
	var nf NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestChangeStatusRefreshesStaleTotal(t *testing.T) {
	svc, db := newOrderService(t)
	burger := mustDish(t, db, "Burger", "100.00")
	order := mustOrder(t, svc, 1, OrderLineIn{DishID: burger.ID, Quantity: 2})

	// Corrupt the cached total behind the service's back.
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", order.ID).
		Update("total_price", dec("1.00")).Error)

	_, err := svc.ChangeStatus(adminActor, order.ID, entity.StatusReady)
	require.NoError(t, err)

	fresh, err := svc.Detail(order.ID)
	require.NoError(t, err)
	require.True(t, fresh.TotalPrice.Equal(dec("200.00")),
		"status change recomputes the cached total, got %s", fresh.TotalPrice)
}
