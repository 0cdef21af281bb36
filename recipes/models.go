// Package recipes implements the recipe resource: its model, the storage
// contract, the ownership-enforcing service, and the HTTP handlers.
package recipes

import "time"

// Recipe represents a stored recipe. Every recipe is owned by the user
// who created it; all reads and mutations are scoped to that owner.
type Recipe struct {
	ID           string    `json:"id"`
	OwnerID      int       `json:"owner_id"`
	Title        string    `json:"title"`
	Ingredients  []string  `json:"ingredients"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
