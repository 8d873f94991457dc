package notifications

import "strings"

// Fixed HTML mail bodies. Placeholders are substituted literally, the
// values never contain markup.
const welcomeTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f4f4f7; padding: 24px;">
    <div style="max-width: 520px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
      <h2 style="color: #333;">Welcome!</h2>
      <p>Your account has been created with the email address <strong>{{email}}</strong>.</p>
      <p>Verify your email address to unlock every feature of your account.</p>
      <p style="color: #888; font-size: 12px;">If you did not create this account, you can safely ignore this email.</p>
    </div>
  </body>
</html>`

const verifyOTPTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f4f4f7; padding: 24px;">
    <div style="max-width: 520px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
      <h2 style="color: #333;">Verify your account</h2>
      <p>You are verifying the account registered to <strong>{{email}}</strong>.</p>
      <p>Use the following one-time code to verify your email address:</p>
      <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold; color: #4c6fff;">{{otp}}</p>
      <p style="color: #888; font-size: 12px;">If you did not request this code, you can safely ignore this email.</p>
    </div>
  </body>
</html>`

const resetOTPTemplate = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f4f4f7; padding: 24px;">
    <div style="max-width: 520px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
      <h2 style="color: #333;">Reset your password</h2>
      <p>We received a password reset request for <strong>{{email}}</strong>.</p>
      <p>Use the following one-time code to reset your password:</p>
      <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold; color: #4c6fff;">{{otp}}</p>
      <p style="color: #888; font-size: 12px;">If you did not request a reset, you can safely ignore this email.</p>
    </div>
  </body>
</html>`

// renderTemplate substitutes the {{email}} and {{otp}} placeholders.
func renderTemplate(template, email, otp string) string {
	return strings.NewReplacer(
		"{{email}}", email,
		"{{otp}}", otp,
	).Replace(template)
}
