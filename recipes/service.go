package recipes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/user/recipebox-go/apperror"
)

// Service holds the business logic for recipes. Every operation that
// touches an existing recipe first loads it and checks that the caller
// is its owner; mutating or reading someone else's recipe fails with a
// ForbiddenError.
type Service struct {
	store Store
}

// NewService creates a new recipes Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create stores a new recipe owned by the calling user.
func (s *Service) Create(ctx context.Context, ownerID int, req CreateRecipeRequest) (*Recipe, error) {
	if req.Title == "" {
		return nil, apperror.NewValidationError("title is required", nil)
	}

	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	now := time.Now()
	recipe := &Recipe{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Title:        req.Title,
		Ingredients:  ingredients,
		Instructions: req.Instructions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListByOwner returns the calling user's recipes, oldest first. Recipes
// owned by other users are never included.
func (s *Service) ListByOwner(ctx context.Context, ownerID int) ([]Recipe, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Get returns a single recipe by ID, provided the caller owns it.
func (s *Service) Get(ctx context.Context, requesterID int, id string) (*Recipe, error) {
	return s.getOwned(ctx, requesterID, id)
}

// Update applies a partial update to an owned recipe. Nil request fields
// are left unchanged. Concurrent updates are last-write-wins.
func (s *Service) Update(ctx context.Context, requesterID int, id string, req UpdateRecipeRequest) (*Recipe, error) {
	recipe, err := s.getOwned(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperror.NewValidationError("title must not be empty", nil)
		}
		recipe.Title = *req.Title
	}
	if req.Ingredients != nil {
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	recipe.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes an owned recipe. Deleting the same recipe twice fails
// the second time with a NotFoundError.
func (s *Service) Delete(ctx context.Context, requesterID int, id string) error {
	if _, err := s.getOwned(ctx, requesterID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// getOwned loads a recipe and enforces the ownership check shared by
// Get, Update, and Delete. Identifiers that are not valid UUIDs cannot
// exist in the store and are reported as not found.
func (s *Service) getOwned(ctx context.Context, requesterID int, id string) (*Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NewNotFoundError("recipe not found", nil)
	}

	recipe, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.OwnerID != requesterID {
		return nil, apperror.NewForbiddenError("you do not own this recipe", nil)
	}
	return recipe, nil
}
