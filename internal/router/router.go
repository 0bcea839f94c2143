package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/Artser/ProStore/internal/handlers"
	"github.com/Artser/ProStore/internal/middleware"
	"github.com/Artser/ProStore/internal/models"
	"github.com/Artser/ProStore/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Info().Msg("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil when Google sign-in is not configured.
func SetupRoutes(e *echo.Echo, db *gorm.DB, firebaseAuthClient *auth.Client) {
	// AutoMigrate models. FilmTag is created by the Film.Tags relation.
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Film{},
		&models.Tag{},
		&models.Like{},
		&models.Note{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to auto migrate models")
	}
	log.Info().Msg("PostgreSQL auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	filmRepo := repositories.NewPostgresFilmRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Info().Msg("Auth routes configured")

	// --- Public catalog (token optional, used for liked_by_me) ---
	// Single-film reads and like counts live here too: the handlers
	// gate private films themselves, so anonymous viewers only need to
	// get past the middleware.
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTAuthMiddleware())
	publicHandler := handlers.NewPublicFilmHandler(filmRepo, likeRepo)
	publicHandler.RegisterPublicRoutes(public)
	filmHandler := handlers.NewFilmHandler(filmRepo, categoryRepo)
	filmHandler.RegisterFilmReadRoutes(public)
	likeHandler := handlers.NewLikeHandler(likeRepo, filmRepo)
	likeHandler.RegisterLikeReadRoutes(public)
	log.Info().Msg("Public film routes configured")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Info().Msg("User profile routes configured")

	// Film routes
	filmHandler.RegisterFilmRoutes(api)
	log.Info().Msg("Film routes configured")

	// Like routes
	likeHandler.RegisterLikeRoutes(api)
	log.Info().Msg("Like routes configured")

	// Admin table viewer routes
	adminHandler := handlers.NewAdminHandler(db)
	adminHandler.RegisterAdminRoutes(api)
	log.Info().Msg("Admin table viewer routes configured")

	log.Info().Msg("All routes configured")
}
