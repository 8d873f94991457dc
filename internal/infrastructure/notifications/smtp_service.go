package notifications

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/sayakroy83/Authentication-System/domain"
)

// ErrRelayNotConfigured is returned when the SMTP host or sender address
// is missing, so callers see the failure instead of a silent drop.
var ErrRelayNotConfigured = errors.New("mail relay not configured")

// SMTPServiceImpl implements domain.MailService over an SMTP relay.
// The dialer is created once at startup and shared by every request.
type SMTPServiceImpl struct {
	dialer *gomail.Dialer
	sender string
}

// NewSMTPService creates a new SMTP-backed mail service
func NewSMTPService(host string, port int, username, password, sender string) domain.MailService {
	return &SMTPServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: sender,
	}
}

// SendWelcome implements domain.MailService
func (s *SMTPServiceImpl) SendWelcome(to string) error {
	body := renderTemplate(welcomeTemplate, to, "")
	return s.send(to, "Welcome to Authentication System", body)
}

// SendVerifyOTP implements domain.MailService
func (s *SMTPServiceImpl) SendVerifyOTP(to, otp string) error {
	body := renderTemplate(verifyOTPTemplate, to, otp)
	return s.send(to, "Verify your account", body)
}

// SendResetOTP implements domain.MailService
func (s *SMTPServiceImpl) SendResetOTP(to, otp string) error {
	body := renderTemplate(resetOTPTemplate, to, otp)
	return s.send(to, "Reset your password", body)
}

func (s *SMTPServiceImpl) send(to, subject, htmlBody string) error {
	if s.dialer.Host == "" || s.sender == "" {
		return ErrRelayNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
