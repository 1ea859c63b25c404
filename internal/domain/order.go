package domain

import "time"

// Order is a business resource owned by exactly one user.
type Order struct {
	ID        int64
	UserID    int64
	Details   string
	CreatedAt time.Time
}
