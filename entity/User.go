package entity

import (
	"gorm.io/gorm"
)

const (
	RoleWaiter = "waiter"
	RoleChef   = "chef"
	RoleAdmin  = "admin"
)

// ValidRole reports whether r is one of the three staff roles.
func ValidRole(r string) bool {
	return r == RoleWaiter || r == RoleChef || r == RoleAdmin
}

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:waiter" json:"role"`

	// Superuser grants admin rights regardless of the stored role.
	Superuser bool `json:"-"`
}

func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin || u.Superuser }
func (u *User) IsChef() bool   { return u.Role == RoleChef }
func (u *User) IsWaiter() bool { return u.Role == RoleWaiter }
