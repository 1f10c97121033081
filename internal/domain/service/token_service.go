package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleCurator is required by every route that changes curated data.
const RoleCurator = "curator"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claims carry role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken creates an access token for an operator.
	GenerateToken(subject string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
