package driving

import (
	"context"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// AuthService authenticates administrators for the write surface
// (manual mapping creation and synthesis).
type AuthService interface {
	// Login verifies the admin credential and issues a token
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

	// ValidateToken parses and validates a bearer token
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)
}
