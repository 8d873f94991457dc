package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/sayakroy83/Authentication-System/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo     domain.UserRepository
	passwordSvc  domain.PasswordService
	tokenSvc     domain.TokenService
	mailSvc      domain.MailService
	verifyOTPTTL time.Duration
	resetOTPTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	mailSvc domain.MailService,
	verifyOTPTTL time.Duration,
	resetOTPTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		mailSvc:      mailSvc,
		verifyOTPTTL: verifyOTPTTL,
		resetOTPTTL:  resetOTPTTL,
	}
}

// Register implements domain.AuthService. The welcome mail is sent
// after the user is durably created; a mail failure therefore surfaces
// as an error even though the record already exists. There is no
// compensating rollback.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		IsVerified:   false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.GenerateSessionToken(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.mailSvc.SendWelcome(user.Email); err != nil {
		return nil, fmt.Errorf("failed to send welcome mail: %w", err)
	}

	zap.L().Info("user registered", zap.String("user_id", user.ID.Hex()))

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login implements domain.AuthService. Verification status is not
// checked; unverified users can log in.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.GenerateSessionToken(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// SendVerifyOTP implements domain.AuthService
func (s *AuthServiceImpl) SendVerifyOTP(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return domain.ErrAlreadyVerified
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	user.VerifyOTP = otp
	user.VerifyOTPExpireAt = time.Now().Add(s.verifyOTPTTL).UnixMilli()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.mailSvc.SendVerifyOTP(user.Email, otp); err != nil {
		return fmt.Errorf("failed to send verify otp mail: %w", err)
	}
	return nil
}

// VerifyEmail implements domain.AuthService
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, userID, otp string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.VerifyOTP == "" || user.VerifyOTP != otp {
		return domain.ErrOTPInvalid
	}

	if user.VerifyOTPExpireAt < time.Now().UnixMilli() {
		return domain.ErrOTPExpired
	}

	user.IsVerified = true
	user.VerifyOTP = ""
	user.VerifyOTPExpireAt = 0

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	zap.L().Info("email verified", zap.String("user_id", user.ID.Hex()))
	return nil
}

// SendResetOTP implements domain.AuthService
func (s *AuthServiceImpl) SendResetOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	user.ResetOTP = otp
	user.ResetOTPExpireAt = time.Now().Add(s.resetOTPTTL).UnixMilli()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.mailSvc.SendResetOTP(user.Email, otp); err != nil {
		return fmt.Errorf("failed to send reset otp mail: %w", err)
	}
	return nil
}

// ResetPassword implements domain.AuthService
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, otp, password string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.ResetOTP == "" || user.ResetOTP != otp {
		return domain.ErrOTPInvalid
	}

	if user.ResetOTPExpireAt < time.Now().UnixMilli() {
		return domain.ErrOTPExpired
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.ResetOTP = ""
	user.ResetOTPExpireAt = 0

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	zap.L().Info("password reset", zap.String("user_id", user.ID.Hex()))
	return nil
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// generateOTP draws a uniformly random 6-digit code in [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
