package auth

import (
	"context"
	"fmt"

	"github.com/gatescan/attendance-backend-go/internal/config"
	"github.com/gatescan/attendance-backend-go/internal/domain/auth"
	"github.com/gatescan/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type credential struct {
	passwordHash []byte
	role         string
}

// AuthServiceImpl authenticates against a fixed credential table: one
// account per role, configured at startup. There is no user store.
type AuthServiceImpl struct {
	credentials map[string]credential
	jwt.Service
}

func NewAuthService(creds config.CredentialsConfig, jwtService jwt.Service) (auth.Service, error) {
	table := map[string]struct {
		password string
		role     string
	}{
		"admin": {creds.AdminPassword, auth.RoleAdmin},
		"hr":    {creds.HRPassword, auth.RoleHR},
		"gate":  {creds.GatePassword, auth.RoleGate},
	}

	credentials := make(map[string]credential, len(table))
	for username, entry := range table {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash %s credential: %w", username, err)
		}
		credentials[username] = credential{passwordHash: hash, role: entry.role}
	}

	return &AuthServiceImpl{
		credentials: credentials,
		Service:     jwtService,
	}, nil
}

// Login implements auth.Service.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	cred, ok := a.credentials[req.Username]
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.GenerateAccessToken(req.Username, cred.role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Role:                 cred.role,
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}
