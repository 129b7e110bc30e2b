package driven

import "github.com/crosswalk-labs/crosswalk-core/internal/core/domain"

// AuthAdapter handles credential hashing and token operations
type AuthAdapter interface {
	// HashPassword generates a hash from a plaintext credential
	HashPassword(password string) (string, error)

	// VerifyPassword checks if a credential matches a hash
	VerifyPassword(password, hash string) bool

	// GenerateToken creates a signed token from claims
	GenerateToken(claims *domain.TokenClaims) (string, error)

	// ParseToken validates a token and extracts claims
	ParseToken(token string) (*domain.TokenClaims, error)
}
