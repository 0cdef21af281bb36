// Command recipebox is an HTTP backend for managing recipes. It exposes
// registration/login with bcrypt-hashed credentials, bearer-token
// authentication, and per-user CRUD over the recipe resource.
//
// Everything with process lifetime — the database pool, the signing
// secret, the services — is initialized here once and injected into the
// handlers; there are no ambient globals.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/recipebox-go/apperror"
	"github.com/user/recipebox-go/auth"
	"github.com/user/recipebox-go/config"
	"github.com/user/recipebox-go/db"
	"github.com/user/recipebox-go/recipes"
	"github.com/user/recipebox-go/users"
)

func main() {
	// .env is a development convenience; in production the variables are
	// set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()
	log.Printf("Connected to database %s", cfg.DB.DBName)

	if cfg.MigrationsPath != "" {
		if err := db.RunMigrations(cfg.DB, cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Stores and services; constructor injection throughout.
	userStore := auth.NewPostgresUserStore(pool)
	recipeStore := recipes.NewPostgresStore(pool)

	authService := auth.NewService(userStore, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewService(userStore)
	userHandlers := users.NewHandlers(userService)

	recipeService := recipes.NewService(recipeStore)
	recipeHandlers := recipes.NewHandlers(recipeService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that answers in the standard error shape.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Public auth routes.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
	})

	// Current-user routes, bearer-token protected.
	r.Route("/users", func(r chi.Router) {
		r.Use(auth.Middleware(authService))
		r.Get("/me", userHandlers.HandleGetProfile())
	})

	// Recipe routes, bearer-token protected.
	r.Route("/recipes", func(r chi.Router) {
		r.Use(auth.Middleware(authService))
		recipeHandlers.RegisterRoutes(r)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM: drain in-flight requests
	// before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, kept
// here to avoid an import cycle with the feature packages.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
