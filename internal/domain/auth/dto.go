package auth

// LoginRequest carries the gate/HR console credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the role that gates UI routing plus an access
// token for the protected endpoints.
type LoginResponse struct {
	Role                 string `json:"role"`
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
