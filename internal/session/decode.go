package session

import (
	"fmt"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// Decode structurally extracts the user identity from a JWT access token.
//
// The signature is NOT verified: the server is the only party that can
// check it, and the client uses the payload purely for display and
// role-based rendering decisions. Keep every client-side read of token
// claims behind this function so the unverified parse stays auditable.
//
// The backend issues tokens whose identity fields sit either at the top
// level of the claims or nested in the registered "sub" claim; both layouts
// are accepted.
func Decode(token string) (*models.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTokenInvalid, err)
	}

	source := map[string]any(claims)
	if sub, ok := claims["sub"].(map[string]any); ok {
		source = sub
	}

	identity := &models.Identity{
		Username: stringClaim(source, "username"),
		Email:    stringClaim(source, "email"),
		Role:     stringClaim(source, "role"),
	}

	if id, ok := source["id"].(float64); ok {
		identity.ID = int(id)
	}

	if identity.Username == "" && identity.Email == "" {
		return nil, fmt.Errorf("%w: no identity claims in payload", shared.ErrTokenInvalid)
	}

	return identity, nil
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
