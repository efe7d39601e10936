package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrHRAccessRequired    = errors.New("hr access required")
	ErrGateAccessRequired  = errors.New("gate access required")
	ErrAdminAccessRequired = errors.New("admin access required")
)
