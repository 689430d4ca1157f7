package service

import (
	"github.com/google/uuid"
)

// Claims are the identity facts carried by a validated access token.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
}

// TokenService issues and validates bearer tokens.
// Tokens are normally issued by the external auth backend; GenerateAccessToken
// exists for local tooling and tests.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
