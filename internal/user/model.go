package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
)

// User represents an account on the platform. DisplayName doubles as the
// default organizer on bookings the user creates.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	AvatarFileID *string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
}
