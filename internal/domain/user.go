package domain

import "time"

// User roles.
const (
	RoleSuperAdmin     = "super_admin"
	RoleChainOwner     = "chain_owner"
	RoleLocationAdmin  = "location_admin"
	RoleEmployee       = "employee"
	RoleDeliveryPerson = "delivery_person"
	RoleCustomer       = "customer"
)

// User statuses.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusPending   = "pending"
	UserStatusSuspended = "suspended"
)

// User exists as a foreign-key target for orders. The credential columns
// live in the schema but are never read by this service.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
