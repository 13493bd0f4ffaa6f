package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Role identifies the account type embedded in issued tokens.
type Role string

const (
	RoleFarmer  Role = "farmer"
	RoleAnalyst Role = "analyst"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleAnalyst:
		return true
	}
	return false
}

// ParseRole normalizes a stored role string into a Role.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	return role, role.IsValid()
}

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	Username string
	Role     Role
	JTI      string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}
