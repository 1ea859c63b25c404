package domain

import "time"

// User is the domain entity for a registered identity.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	Active       bool
	CreatedAt    time.Time
}
