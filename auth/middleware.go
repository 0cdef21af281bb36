package auth

import (
	"net/http"
	"strings"

	"github.com/user/recipebox-go/apperror"
)

// Middleware returns the bearer-token authentication middleware. It
// extracts the token from the Authorization header, verifies it through
// the auth Service, and attaches the resolved user ID to the request
// context. On any failure the request is short-circuited with a 401 and
// the downstream handler is never invoked.
func Middleware(svc *Service) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("authorization header is missing", nil))
				return
			}

			// Expected shape: "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			userID, err := svc.VerifyToken(parts[1])
			if err != nil {
				WriteError(w, r, err)
				return
			}

			ctx := ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
