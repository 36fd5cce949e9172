// Package auth provides JWT validation and the gRPC interceptor used by the
// lending back-office services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by back-office tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants.
const (
	RoleAdmin       = "admin"
	RoleCreditAgent = "credit_agent"
	RoleAuditor     = "auditor"
	RoleCustomer    = "customer"
)
