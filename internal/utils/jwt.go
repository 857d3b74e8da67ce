package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adhd-assistant/api/models"
)

// hmacMethods restricts token verification to the HMAC family. A token
// signed with any other algorithm fails parsing regardless of its payload.
var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the given
// user identifier and token type.
//
// The token includes the following claims:
//   - Subject   (sub):  the user ID in canonical UUID form
//   - IssuedAt  (iat):  the current time
//   - ExpiresAt (exp):  the current time plus ttl
//   - type:             "access" or "refresh"
//
// A negative ttl produces an already-expired token; this is intentional and
// used by expiry tests. Returns an error if userID is the zero UUID, the
// token type is empty, or signKey is empty.
func GenerateJWTToken(userID uuid.UUID, tokenType models.TokenType, ttl time.Duration, signKey string) (models.Token, error) {
	if userID == uuid.Nil || tokenType == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		TokenType: string(tokenType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Type:         tokenType,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only)
//   - Expiration (exp) claim check
//   - Subject (sub) presence and conversion to a UUID
//   - Presence of the custom "type" claim
//
// Note that successful validation says nothing about which operations the
// token authorizes: the caller must still compare the returned Type against
// the kind it expects ("access" vs "refresh").
//
// Returns the parsed token or a non-nil error if the token is malformed,
// forged, expired, or missing required claims. Callers are expected to fold
// all such failures into a single invalid-token fault.
func ValidateAndParseJWTToken(tokenString, signKey string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods(hmacMethods))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.TokenType == "" {
		return models.Token{}, errors.New("missing token type claim")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Type:         models.TokenType(claims.TokenType),
	}, nil
}

// ParseBearerToken extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
