package mocks

import "github.com/sayakroy83/Authentication-System/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateSessionTokenFunc func(userID string) (string, error)
	ValidateSessionTokenFunc func(token string) (*domain.SessionClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateSessionToken generates a session token
func (m *MockTokenService) GenerateSessionToken(userID string) (string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc(userID)
	}
	// Default behavior: deterministic fake token
	return "token_" + userID, nil
}

// ValidateSessionToken validates a session token
func (m *MockTokenService) ValidateSessionToken(token string) (*domain.SessionClaims, error) {
	if m.ValidateSessionTokenFunc != nil {
		return m.ValidateSessionTokenFunc(token)
	}
	// Default behavior: invalid token
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
