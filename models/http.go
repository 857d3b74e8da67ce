package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Username *string `json:"username,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest is the body of PUT /api/auth/me.
// Only the username is mutable through the public API.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
}

// TokenResponse is returned by login and refresh: a freshly issued
// access/refresh pair. TokenType is always "bearer".
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// NewTokenResponse builds the wire representation of a token pair.
func NewTokenResponse(pair TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.Access.SignedString,
		RefreshToken: pair.Refresh.SignedString,
		TokenType:    "bearer",
	}
}

// MessageResponse is a generic message payload.
type MessageResponse struct {
	Message string `json:"message"`
}
