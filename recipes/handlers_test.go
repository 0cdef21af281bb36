package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/recipebox-go/apperror"
	"github.com/user/recipebox-go/auth"
	"github.com/user/recipebox-go/config"
)

// memUserStore is an in-memory credential store for the end-to-end tests.
type memUserStore struct {
	nextID int
	users  map[string]*auth.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1, users: make(map[string]*auth.User)}
}

func (s *memUserStore) CreateUser(_ context.Context, user *auth.User) (*auth.User, error) {
	if _, exists := s.users[user.Username]; exists {
		return nil, apperror.NewConflictError("username already exists", nil)
	}
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	copied := *user
	s.users[user.Username] = &copied
	return user, nil
}

func (s *memUserStore) GetUserByUsername(_ context.Context, username string) (*auth.User, error) {
	user, exists := s.users[username]
	if !exists {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("user '%s' not found", username), nil)
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) GetUserByID(_ context.Context, id int) (*auth.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", id), nil)
}

// newTestServer wires the auth and recipe routes the way main.go does,
// backed by in-memory stores.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	authService := auth.NewService(newMemUserStore(), config.AuthConfig{
		JWTSecret:           "test-secret",
		AccessTokenDuration: time.Hour,
		BcryptCost:          bcrypt.MinCost,
	})
	authHandlers := auth.NewHandlers(authService)
	recipeHandlers := NewHandlers(NewService(newMemStore()))

	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
	})
	r.Route("/recipes", func(r chi.Router) {
		r.Use(auth.Middleware(authService))
		recipeHandlers.RegisterRoutes(r)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func registerAndLogin(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens auth.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tokens))
	require.NotEmpty(t, tokens.AccessToken)
	return tokens.AccessToken
}

func TestEndToEndRecipeFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "alice", "pw1")

	// Create a recipe.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/recipes", token, map[string]interface{}{
		"title":       "Soup",
		"ingredients": []string{"water", "salt"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created Recipe
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "Soup", created.Title)
	assert.NotEmpty(t, created.ID)

	// The list contains it.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/recipes", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []Recipe
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Soup", listed[0].Title)

	// No Authorization header means 401.
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/recipes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterDuplicateUsernameHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", map[string]string{
		"username": "alice", "password": "pw1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", map[string]string{
		"username": "alice", "password": "pw2",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"error":"username already exists"}`, string(body))
}

func TestLoginFailuresHTTP(t *testing.T) {
	srv := newTestServer(t)
	registerAndLogin(t, srv, "alice", "pw1")

	// Unknown user.
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"username": "nobody", "password": "pw1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Wrong password.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOwnershipIsolationHTTP(t *testing.T) {
	srv := newTestServer(t)
	aliceToken := registerAndLogin(t, srv, "alice", "pw1")
	bobToken := registerAndLogin(t, srv, "bob", "pw2")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/recipes", aliceToken, map[string]string{"title": "Soup"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Recipe
	require.NoError(t, json.Unmarshal(body, &created))

	// Bob's list must not contain Alice's recipe.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/recipes", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bobsRecipes []Recipe
	require.NoError(t, json.Unmarshal(body, &bobsRecipes))
	assert.Empty(t, bobsRecipes)

	// Direct access and mutation by Bob are forbidden.
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/recipes/"+created.ID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/recipes/"+created.ID, bobToken, map[string]string{"title": "Stolen"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/recipes/"+created.ID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Alice still sees her unmodified recipe.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/recipes/"+created.ID, aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got Recipe
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Soup", got.Title)
}

func TestUpdateAndDeleteHTTP(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "alice", "pw1")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/recipes", token, map[string]string{"title": "Soup"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Recipe
	require.NoError(t, json.Unmarshal(body, &created))

	// Partial update.
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/recipes/"+created.ID, token, map[string]string{"title": "Hearty Soup"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated Recipe
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Hearty Soup", updated.Title)

	// Delete succeeds once, then the recipe is gone.
	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/recipes/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"recipe deleted"}`, string(body))

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/recipes/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Updating a deleted recipe is also a 404.
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/recipes/"+created.ID, token, map[string]string{"title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
