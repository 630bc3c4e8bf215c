package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/coachconnect/backend/internal/config"
	"github.com/coachconnect/backend/internal/handlers"
	appMiddleware "github.com/coachconnect/backend/internal/middleware"
	"github.com/coachconnect/backend/internal/services"
	"github.com/coachconnect/backend/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Profile record store: Mongo when configured, JSON file otherwise.
	var profileStore store.ProfileStore
	if cfg.MongoURI != "" {
		mongoStore, err := store.NewMongoProfileStore(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoStore.Close(ctx)
		profileStore = mongoStore
		log.Printf("✅ Connected to MongoDB (%s)", cfg.MongoDBName)
	} else {
		fileStore, err := store.NewFileProfileStore(cfg.DataDir, "profiles.json")
		if err != nil {
			log.Fatalf("Failed to open profile store: %v", err)
		}
		profileStore = fileStore
		log.Printf("⚠️  MONGODB_URI not set, using file store in %s", cfg.DataDir)
	}

	profileService := services.NewProfileService(profileStore)
	profileHandler := handlers.NewProfileHandler(profileService, cfg.Development())

	// Firebase Auth (server-side verification of ID tokens).
	authClient, err := appMiddleware.NewFirebaseAuthClient(ctx, appMiddleware.FirebaseAuthConfig{
		ProjectID:       cfg.FirebaseProjectID,
		CredentialsJSON: cfg.FirebaseCredentialsJSON,
	})
	if err != nil {
		log.Printf("Warning: failed to initialize Firebase Auth client: %v", err)
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/health", profileHandler.Health)

	r.Route("/api/profile", func(r chi.Router) {
		// The original backend ships a token verifier but does not mount
		// it on the profile routes; mounting is opt-in.
		if cfg.AuthRequired {
			if authClient != nil {
				r.Use(appMiddleware.FirebaseAuth(authClient))
			} else {
				r.Use(appMiddleware.JWTAuth(cfg.JWTSecret))
			}
		}

		r.Put("/", profileHandler.UpdateProfile)
		r.Post("/onboarding", profileHandler.Onboarding)
		r.Get("/onboarding-status/{userId}", profileHandler.OnboardingStatus)
		r.Get("/{userId}", profileHandler.GetProfile)
	})

	log.Printf("🚀 CoachConnect API server starting on %s", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
