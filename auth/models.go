package auth

import "time"

// User represents an account holder. The bcrypt hash is excluded from
// JSON so it can never leak into an API response.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
