package models

// Role is what the demo "login" switches between.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleClient Role = "client"
	RolePro    Role = "pro"
	RoleAdmin  Role = "admin"
)

// Actor identifies who is performing an operation.
type Actor struct {
	ID   string
	Role Role
}
