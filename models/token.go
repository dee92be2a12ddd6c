package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to an authenticated user.
//
// It embeds [jwt.Token] for low-level operations and [jwt.RegisteredClaims]
// so the value can be passed directly to [jwt.ParseWithClaims].
type Token struct {
	// Token is the underlying JWT. Excluded from JSON.
	*jwt.Token `json:"-"`

	// RegisteredClaims holds sub, iss, iat and exp.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
