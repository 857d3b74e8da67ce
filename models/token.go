package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes the two kinds of tokens the service issues.
// Access and refresh tokens share the same signing key and encoding;
// the "type" claim is the only thing telling them apart, so every
// consumer of a decoded token must check it against the expected kind.
type TokenType string

const (
	// AccessToken is a short-lived credential authorizing API calls.
	AccessToken TokenType = "access"

	// RefreshToken is a long-lived credential used solely to mint new pairs.
	RefreshToken TokenType = "refresh"
)

// TokenClaims is the claim set embedded in every issued JWT:
// the registered claims (sub, exp, iat) plus the custom "type" tag.
type TokenClaims struct {
	// TokenType is the "type" claim: "access" or "refresh".
	TokenType string `json:"type"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID and Type are cached, parsed copies of the "sub" and "type" claims,
// populated during generation or after successful validation, so callers do
// not re-parse claim strings.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Type is the token kind extracted from the "type" claim.
	Type TokenType `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair carries a freshly issued access/refresh token pair,
// both bound to the same user.
type TokenPair struct {
	Access  Token
	Refresh Token
}
