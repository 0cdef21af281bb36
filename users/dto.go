// Package users exposes the current-user profile endpoint. This file
// defines its response payload.
package users

import "time"

// ProfileResponse represents the data returned for the authenticated
// user's profile. The password hash is never part of it.
type ProfileResponse struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
