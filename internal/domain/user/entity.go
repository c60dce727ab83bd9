// internal/domain/user/entity.go
package user

import (
	"time"
)

// Role enumerates the warehouse roles. A user's role is assigned by an
// admin; the permission model itself never changes it.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleWarehouseManager Role = "warehouse_manager"
	RoleWarehouseStaff   Role = "warehouse_staff"
	RoleAccountant       Role = "accountant"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleWarehouseManager, RoleWarehouseStaff, RoleAccountant:
		return true
	}
	return false
}

// User represents an account on the dashboard
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
