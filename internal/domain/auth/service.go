package auth

import "context"

// Roles known to the credential table.
const (
	RoleAdmin = "admin"
	RoleHR    = "hr"
	RoleGate  = "gate"
)

// Service authenticates against the fixed credential table.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
