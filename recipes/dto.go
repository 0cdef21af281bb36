package recipes

// CreateRecipeRequest is the payload for creating a recipe. Only the
// title is mandatory.
type CreateRecipeRequest struct {
	Title        string   `json:"title" example:"Soup"`
	Ingredients  []string `json:"ingredients" example:"water,salt"`
	Instructions string   `json:"instructions" example:"Boil the water. Add salt."`
}

// UpdateRecipeRequest is the payload for partial updates. Nil fields are
// left unchanged.
type UpdateRecipeRequest struct {
	Title        *string  `json:"title,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions *string  `json:"instructions,omitempty"`
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message" example:"recipe deleted"`
}
