package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	SendVerifyOTP(ctx context.Context, userID string) error
	VerifyEmail(ctx context.Context, userID, otp string) error
	SendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, password string) error
	GetUserProfile(ctx context.Context, userID string) (*User, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	GenerateSessionToken(userID string) (string, error)
	ValidateSessionToken(token string) (*SessionClaims, error)
}

// MailService defines outbound email operations
type MailService interface {
	SendWelcome(to string) error
	SendVerifyOTP(to, otp string) error
	SendResetOTP(to, otp string) error
}
