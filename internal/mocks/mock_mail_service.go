package mocks

import "github.com/sayakroy83/Authentication-System/domain"

// MockMailService implements domain.MailService for testing
type MockMailService struct {
	SendWelcomeFunc   func(to string) error
	SendVerifyOTPFunc func(to, otp string) error
	SendResetOTPFunc  func(to, otp string) error
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// SendWelcome sends a welcome mail
func (m *MockMailService) SendWelcome(to string) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(to)
	}
	// Default behavior: success
	return nil
}

// SendVerifyOTP sends a verification OTP mail
func (m *MockMailService) SendVerifyOTP(to, otp string) error {
	if m.SendVerifyOTPFunc != nil {
		return m.SendVerifyOTPFunc(to, otp)
	}
	// Default behavior: success
	return nil
}

// SendResetOTP sends a password reset OTP mail
func (m *MockMailService) SendResetOTP(to, otp string) error {
	if m.SendResetOTPFunc != nil {
		return m.SendResetOTPFunc(to, otp)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.MailService = (*MockMailService)(nil)
