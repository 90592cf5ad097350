package model

import (
	"fmt"
	"time"
)

// User represents an account. Every domain row is scoped to exactly one user;
// there are no roles or shared data.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}

// ValidateUsername checks username requirements.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	if len(username) > 64 {
		return fmt.Errorf("username must be at most 64 characters")
	}
	return nil
}

// ValidatePassword checks password requirements.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
