package services

import (
	"context"
	"time"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driven"
	"github.com/crosswalk-labs/crosswalk-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

const tokenTTL = 24 * time.Hour

// authService authenticates the single configured administrator.
// Mapping writes are a curator action, so there is no user storage,
// just one credential from the environment.
type authService struct {
	adapter       driven.AuthAdapter
	adminUsername string
	adminHash     string // bcrypt hash of the admin credential
}

// NewAuthService creates a new AuthService
func NewAuthService(adapter driven.AuthAdapter, adminUsername, adminHash string) driving.AuthService {
	return &authService{
		adapter:       adapter,
		adminUsername: adminUsername,
		adminHash:     adminHash,
	}
}

// Login verifies the admin credential and issues a signed token.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if req.Username != s.adminUsername || !s.adapter.VerifyPassword(req.Password, s.adminHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	token, err := s.adapter.GenerateToken(&domain.TokenClaims{
		Subject:   req.Username,
		Role:      domain.RoleAdmin,
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	})
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken parses a bearer token into an auth context.
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	claims, err := s.adapter.ParseToken(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if claims.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	return &domain.AuthContext{
		Subject: claims.Subject,
		Role:    claims.Role,
	}, nil
}
