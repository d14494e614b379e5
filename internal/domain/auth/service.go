package auth

import "context"

// AuthService defines authentication operations
type AuthService interface {
	// Register creates a user account and returns a token pair
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login verifies credentials and returns a token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser returns the authenticated user's profile
	CurrentUser(ctx context.Context) (UserResponse, error)
}
