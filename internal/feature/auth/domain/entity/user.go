// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown on media, comments and messages.
	Name string `gorm:"size:100;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	Password string `gorm:"size:255;not null"`

	// Verified reports whether the email address has been confirmed.
	// Unverified users cannot log in.
	Verified bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
