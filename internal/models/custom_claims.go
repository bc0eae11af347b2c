package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin   = "admin"
	RoleSupport = "support"
	RoleUser    = "user"
)

// DashboardClaims are the claims carried by dashboard access tokens
type DashboardClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

// CanManageAccounts reports whether the role may act on other users' accounts
func (c *DashboardClaims) CanManageAccounts() bool {
	return c.Role == RoleAdmin || c.Role == RoleSupport
}
