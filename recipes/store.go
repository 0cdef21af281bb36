package recipes

import "context"

// Store is the recipe repository contract. GetByID is an unscoped lookup
// by identifier; ownership is enforced one layer up, in the Service.
type Store interface {
	Create(ctx context.Context, recipe *Recipe) error
	// ListByOwner returns the recipes owned by a single user, oldest first.
	ListByOwner(ctx context.Context, ownerID int) ([]Recipe, error)
	// GetByID returns a NotFoundError if no such recipe exists.
	GetByID(ctx context.Context, id string) (*Recipe, error)
	// Update rewrites a recipe row. Returns a NotFoundError if the recipe
	// no longer exists.
	Update(ctx context.Context, recipe *Recipe) error
	// Delete removes a recipe. Returns a NotFoundError if the recipe does
	// not exist, so a repeated delete fails cleanly.
	Delete(ctx context.Context, id string) error
}
