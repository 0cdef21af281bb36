package recipes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/recipebox-go/apperror"
	"github.com/user/recipebox-go/auth"
)

// Handlers provides the HTTP handlers for the /recipes routes. All of
// them run behind the auth middleware, so a resolved user ID is always
// expected in the request context.
type Handlers struct {
	service *Service
}

// NewHandlers creates new recipe Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes registers the recipe endpoints on the given router.
// The router is mounted under /recipes with the auth middleware applied
// in main.go.
func (h *Handlers) RegisterRoutes(router chi.Router) {
	router.Post("/", h.handleCreate)
	router.Get("/", h.handleList)
	router.Get("/{id}", h.handleGet)
	router.Put("/{id}", h.handleUpdate)
	router.Delete("/{id}", h.handleDelete)
}

// handleCreate godoc
// @Summary Add a new recipe
// @Tags Recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipeBody body CreateRecipeRequest true "Recipe fields"
// @Success 201 {object} Recipe "Recipe created"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Invalid or missing token"
// @Router /recipes [post]
func (h *Handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user ID not found in context", nil))
		return
	}

	var req CreateRecipeRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	recipe, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusCreated, recipe)
}

// handleList godoc
// @Summary List the caller's recipes
// @Tags Recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Recipe "Recipes owned by the caller"
// @Failure 401 {object} apperror.ErrorResponse "Invalid or missing token"
// @Router /recipes [get]
func (h *Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user ID not found in context", nil))
		return
	}

	recipes, err := h.service.ListByOwner(r.Context(), userID)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, recipes)
}

// handleGet godoc
// @Summary Get recipe by ID
// @Tags Recipes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} Recipe "Recipe found"
// @Failure 403 {object} apperror.ErrorResponse "Recipe owned by another user"
// @Failure 404 {object} apperror.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [get]
func (h *Handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user ID not found in context", nil))
		return
	}

	recipe, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, recipe)
}

// handleUpdate godoc
// @Summary Update recipe by ID
// @Tags Recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param recipeBody body UpdateRecipeRequest true "Fields to update"
// @Success 200 {object} Recipe "Updated recipe"
// @Failure 403 {object} apperror.ErrorResponse "Recipe owned by another user"
// @Failure 404 {object} apperror.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [put]
func (h *Handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user ID not found in context", nil))
		return
	}

	var req UpdateRecipeRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	recipe, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, recipe)
}

// handleDelete godoc
// @Summary Delete recipe by ID
// @Tags Recipes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} MessageResponse "Recipe deleted"
// @Failure 403 {object} apperror.ErrorResponse "Recipe owned by another user"
// @Failure 404 {object} apperror.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [delete]
func (h *Handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user ID not found in context", nil))
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	auth.WriteJSON(w, http.StatusOK, MessageResponse{Message: "recipe deleted"})
}
