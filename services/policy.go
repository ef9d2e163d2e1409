package services

import (
	"tableside/entity"
)

// Actor is the authenticated caller as carried in the JWT claims.
type Actor struct {
	ID        uint
	Role      string
	Superuser bool
}

func (a Actor) IsAdmin() bool  { return a.Role == entity.RoleAdmin || a.Superuser }
func (a Actor) IsChef() bool   { return a.Role == entity.RoleChef }
func (a Actor) IsWaiter() bool { return a.Role == entity.RoleWaiter }

type Action string

const (
	ActionRead         Action = "read"
	ActionCreateOrder  Action = "orders.create"
	ActionChangeStatus Action = "orders.change_status"
	ActionUpdateOrder  Action = "orders.update"
	ActionDeleteOrder  Action = "orders.delete"
	ActionCreateUser   Action = "users.create"
	ActionViewRevenue  Action = "reports.revenue"
	ActionManageDishes Action = "dishes.manage"
	ActionEditDishes   Action = "dishes.edit"
)

// roleAny marks actions open to every authenticated role.
const roleAny = "*"

// policy is the single decision table for role-based access. The one rule
// it cannot express (a chef never marks an order paid) lives in CanSetStatus.
var policy = map[Action][]string{
	ActionRead:         {roleAny},
	ActionCreateOrder:  {entity.RoleWaiter, entity.RoleAdmin},
	ActionChangeStatus: {entity.RoleChef, entity.RoleAdmin},
	ActionUpdateOrder:  {entity.RoleAdmin},
	ActionDeleteOrder:  {entity.RoleAdmin},
	ActionCreateUser:   {entity.RoleAdmin},
	ActionViewRevenue:  {entity.RoleAdmin},
	ActionManageDishes: {entity.RoleChef, entity.RoleAdmin},
	ActionEditDishes:   {entity.RoleAdmin},
}

// Allowed evaluates the decision table for one actor and action. A superuser
// passes every admin-gated action regardless of the stored role.
func Allowed(a Actor, action Action) bool {
	if a.Role == "" {
		return false
	}
	roles, ok := policy[action]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == roleAny || r == a.Role {
			return true
		}
		if r == entity.RoleAdmin && a.IsAdmin() {
			return true
		}
	}
	return false
}

// CanSetStatus applies the chef/paid carve-out on top of the policy table.
func CanSetStatus(a Actor, status string) bool {
	if a.IsChef() && !a.IsAdmin() && status == entity.StatusPaid {
		return false
	}
	return true
}
