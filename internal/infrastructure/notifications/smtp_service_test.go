package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSend_RelayNotConfigured(t *testing.T) {
	svc := NewSMTPService("", 587, "", "", "")

	assert.ErrorIs(t, svc.SendWelcome("user@example.com"), ErrRelayNotConfigured)
	assert.ErrorIs(t, svc.SendVerifyOTP("user@example.com", "123456"), ErrRelayNotConfigured)
	assert.ErrorIs(t, svc.SendResetOTP("user@example.com", "654321"), ErrRelayNotConfigured)
}

func TestSend_MissingSender(t *testing.T) {
	svc := NewSMTPService("smtp.example.com", 587, "mailer", "secret", "")

	assert.ErrorIs(t, svc.SendWelcome("user@example.com"), ErrRelayNotConfigured)
}
