package users

import (
	"context"

	"github.com/user/recipebox-go/auth"
)

// Service provides user profile lookups. It reads through the credential
// store but only ever returns the profile projection.
type Service struct {
	store auth.UserStore
}

// NewService creates a new users Service.
func NewService(store auth.UserStore) *Service {
	return &Service{store: store}
}

// GetProfile retrieves a user's profile by ID. Returns a NotFoundError
// if the user does not exist.
func (s *Service) GetProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}
