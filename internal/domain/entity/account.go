package entity

import "time"

// Roles válidos para Account.
const (
	RoleSuperAdmin = "SuperAdmin"
	RoleAdmin      = "Admin"
	RoleViewer     = "Viewer"
	RoleGuest      = "Guest"
)

// Estados de cuenta.
const (
	AccountActive   = "Active"
	AccountInactive = "Inactive"
)

// Account representa un usuario del sistema con su rol.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt
	FirstName    string
	LastName     string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole indica si role es uno de los roles conocidos.
func IsValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleViewer, RoleGuest:
		return true
	}
	return false
}

// CanWrite indica si el rol puede modificar inventario.
func CanWrite(role string) bool {
	return role == RoleSuperAdmin || role == RoleAdmin
}
