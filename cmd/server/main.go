package main

import (
	"context"

	"github.com/Artser/ProStore/internal/router"
	"github.com/Artser/ProStore/pkg/config"
	"github.com/Artser/ProStore/pkg/firebase"
	"github.com/Artser/ProStore/pkg/logging"
	"github.com/Artser/ProStore/validators"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Configure structured logging
	logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Initialize Firebase for Google sign-in when configured
	var firebaseAuthClient *firebaseauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Firebase")
		}
		firebaseAuthClient = firebaseApp.AuthClient
	} else {
		log.Warn().Msg("FIREBASE_CREDENTIALS_PATH not set, Google sign-in disabled")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, firebaseAuthClient)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
