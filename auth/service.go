package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/recipebox-go/apperror"
	"github.com/user/recipebox-go/config"
)

// tokenIssuer identifies tokens minted by this service.
const tokenIssuer = "recipebox"

// Service provides registration, login, and the token issue/verify pair.
// The signing secret and hashing cost come from configuration, loaded
// once at startup.
type Service struct {
	store      UserStore
	authConfig config.AuthConfig
}

// NewService creates a new auth Service.
func NewService(store UserStore, authConfig config.AuthConfig) *Service {
	return &Service{
		store:      store,
		authConfig: authConfig,
	}
}

// Claims is the JWT payload: the user identity plus the registered
// time-window claims.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Register creates a new user. The plaintext password is bcrypt-hashed
// and never persisted.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.authConfig.BcryptCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Username:       req.Username,
		HashedPassword: string(hashedPassword),
	}

	createdUser, err := s.store.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return createdUser, nil
}

// Login verifies the supplied credentials and returns a signed token.
// An unknown username and a wrong password fail differently: the former
// is a 400, the latter a 401.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewBadRequestError("user not found", nil)
		}
		log.Printf("login: failed to look up user %q: %v", req.Username, err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	// bcrypt's comparison is constant-time with respect to the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("invalid password", nil)
	}

	token, expiresAt, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	}, nil
}

// IssueToken produces a signed HS256 token embedding the user identity,
// issue time, and expiry. Verification is stateless: nothing about the
// token is persisted.
func (s *Service) IssueToken(userID int) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.authConfig.AccessTokenDuration)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// VerifyToken parses and validates a token string and returns the user
// identity it carries. Expired tokens are distinguished from malformed
// or tampered ones in the error message; both map to 401.
func (s *Service) VerifyToken(tokenString string) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authConfig.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperror.NewAuthError("token has expired", err)
		}
		return 0, apperror.NewAuthError("invalid token", err)
	}

	if !token.Valid {
		return 0, apperror.NewAuthError("invalid token", nil)
	}
	if claims.UserID == 0 {
		return 0, apperror.NewAuthError("invalid token: user_id claim is missing", nil)
	}

	return claims.UserID, nil
}
