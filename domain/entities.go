package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. OTP state lives on the user
// document itself; an empty code together with a zero expiry means no
// OTP is outstanding.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Email             string             `bson:"email"`
	PasswordHash      string             `bson:"password"`
	IsVerified        bool               `bson:"is_verified"`
	VerifyOTP         string             `bson:"verify_otp"`
	VerifyOTPExpireAt int64              `bson:"verify_otp_expire_at"`
	ResetOTP          string             `bson:"reset_otp"`
	ResetOTPExpireAt  int64              `bson:"reset_otp_expire_at"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

// AuthResult represents the outcome of a successful registration or login.
type AuthResult struct {
	User  *User
	Token string
}

// SessionClaims represents the decoded payload of a session token.
type SessionClaims struct {
	UserID    string `json:"id"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Profile is the read-only projection of a user returned to clients.
// It never carries the password hash or OTP fields.
type Profile struct {
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
}
