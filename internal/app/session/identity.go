package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// Identity is the subset of the bearer token's claims the client reads
// locally. The chat view needs the current user's id to derive the
// conversation room without an extra round trip to /auth/me.
type Identity struct {
	jwt.StandardClaims

	// ID is the authenticated user's identifier.
	ID string `json:"id"`

	// Name is the user's display name, when the server includes it.
	Name string `json:"name"`

	// Role is the marketplace role (farmer, wholesaler, retailer, admin).
	Role string `json:"role"`
}

// ParseIdentity decodes the claims of the stored token without
// verifying the signature. The client holds no signing secret; the
// server remains the authority on token validity, and every request
// carrying an invalid token is rejected there. This only recovers who
// the token says we are.
func ParseIdentity(tokenString string) (*Identity, error) {
	claims := &Identity{}

	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("parse token claims: %w", err)
	}

	if claims.ID == "" {
		return nil, errors.New("token carries no user id")
	}

	return claims, nil
}

// Expired reports whether the token's expiry claim has passed. Tokens
// without an expiry claim never expire locally.
func (id *Identity) Expired() bool {
	return id.ExpiresAt != 0 && time.Now().Unix() >= id.ExpiresAt
}
