package mocks

import (
	"context"

	"github.com/sayakroy83/Authentication-System/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, name, email, password string) (*domain.AuthResult, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	SendVerifyOTPFunc  func(ctx context.Context, userID string) error
	VerifyEmailFunc    func(ctx context.Context, userID, otp string) error
	SendResetOTPFunc   func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, email, otp, password string) error
	GetUserProfileFunc func(ctx context.Context, userID string) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return &domain.AuthResult{Token: "token"}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{Token: "token"}, nil
}

// SendVerifyOTP issues a verification OTP
func (m *MockAuthService) SendVerifyOTP(ctx context.Context, userID string) error {
	if m.SendVerifyOTPFunc != nil {
		return m.SendVerifyOTPFunc(ctx, userID)
	}
	return nil
}

// VerifyEmail consumes a verification OTP
func (m *MockAuthService) VerifyEmail(ctx context.Context, userID, otp string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, userID, otp)
	}
	return nil
}

// SendResetOTP issues a password reset OTP
func (m *MockAuthService) SendResetOTP(ctx context.Context, email string) error {
	if m.SendResetOTPFunc != nil {
		return m.SendResetOTPFunc(ctx, email)
	}
	return nil
}

// ResetPassword consumes a reset OTP and replaces the password
func (m *MockAuthService) ResetPassword(ctx context.Context, email, otp, password string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, otp, password)
	}
	return nil
}

// GetUserProfile loads a user by id
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
