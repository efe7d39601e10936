package auth

import (
	"context"
	"testing"

	"github.com/gatescan/attendance-backend-go/internal/config"
	"github.com/gatescan/attendance-backend-go/internal/domain/auth"
	"github.com/gatescan/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

func newTestAuthService(t *testing.T) auth.Service {
	t.Helper()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	svc, err := NewAuthService(config.CredentialsConfig{
		AdminPassword: "admin-pass",
		HRPassword:    "hr-pass",
		GatePassword:  "gate-pass",
	}, jwtService)
	require.NoError(t, err)
	return svc
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "hr", Password: "hr-pass"})

	assert.NoError(t, err)
	assert.Equal(t, auth.RoleHR, resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestAuthService_Login_EachRole(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	cases := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin-pass", auth.RoleAdmin},
		{"hr", "hr-pass", auth.RoleHR},
		{"gate", "gate-pass", auth.RoleGate},
	}
	for _, tc := range cases {
		resp, err := svc.Login(ctx, auth.LoginRequest{Username: tc.username, Password: tc.password})
		assert.NoError(t, err)
		assert.Equal(t, tc.role, resp.Role)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrongpassword"})

	assert.Error(t, err)
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "admin-pass"})

	assert.Error(t, err)
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}
