package mocks

import (
	"fmt"
	"time"

	"github.com/crosswalk-labs/crosswalk-core/internal/core/domain"
)

// MockAuthAdapter is a mock implementation of AuthAdapter for testing.
// Hashing is reversible plaintext prefixing and tokens carry the
// subject inline.
type MockAuthAdapter struct {
	tokens map[string]*domain.TokenClaims
}

// NewMockAuthAdapter creates a new MockAuthAdapter
func NewMockAuthAdapter() *MockAuthAdapter {
	return &MockAuthAdapter{
		tokens: make(map[string]*domain.TokenClaims),
	}
}

func (m *MockAuthAdapter) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockAuthAdapter) VerifyPassword(password, hash string) bool {
	return hash == "hashed:"+password
}

func (m *MockAuthAdapter) GenerateToken(claims *domain.TokenClaims) (string, error) {
	token := fmt.Sprintf("token-%s-%d", claims.Subject, time.Now().UnixNano())
	m.tokens[token] = claims
	return token, nil
}

func (m *MockAuthAdapter) ParseToken(token string) (*domain.TokenClaims, error) {
	claims, ok := m.tokens[token]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
