package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by caller tokens.
//
// The subject ("sub") identifies the caller; Staff marks elevated callers.
type Claims struct {
	jwt.RegisteredClaims

	// Staff grants permission to replace, patch and delete notes.
	Staff bool `json:"is_staff"`
}

// Token wraps a signed JWT together with the caller it describes.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Caller is the identity decoded from the token claims.
	Caller Caller `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
