package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/Artser/ProStore/internal/models"
	"github.com/Artser/ProStore/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FilmHandler handles owner-facing film HTTP requests
type FilmHandler struct {
	filmRepository     repositories.FilmRepository
	categoryRepository repositories.CategoryRepository
}

// NewFilmHandler creates a new FilmHandler
func NewFilmHandler(filmRepo repositories.FilmRepository, categoryRepo repositories.CategoryRepository) *FilmHandler {
	return &FilmHandler{
		filmRepository:     filmRepo,
		categoryRepository: categoryRepo,
	}
}

// RegisterFilmRoutes registers the film routes that require a login
func (h *FilmHandler) RegisterFilmRoutes(g *echo.Group) {
	g.POST("/films", h.CreateFilm)
	g.GET("/my/films", h.GetMyFilms)
	g.PUT("/films/:id", h.UpdateFilm)
	g.DELETE("/films/:id", h.DeleteFilm)
	g.POST("/films/:id/toggle-public", h.TogglePublic)
	g.POST("/films/:id/toggle-favorite", h.ToggleFavorite)
}

// RegisterFilmReadRoutes registers single-film reads on an
// optional-auth group, so anonymous viewers can open public films while
// private ones stay owner-only.
func (h *FilmHandler) RegisterFilmReadRoutes(g *echo.Group) {
	g.GET("/films/:id", h.GetFilm)
}

// CreateFilm creates a new film owned by the authenticated user
func (h *FilmHandler) CreateFilm(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateFilmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryRepository.GetOrCreateDefault()
	if err != nil {
		log.Error().Err(err).Msg("create film: default category failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	film := &models.Film{
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		OwnerID:     userID,
		CategoryID:  category.ID,
	}

	if err := h.filmRepository.CreateFilm(film); err != nil {
		log.Error().Err(err).Msg("create film: insert failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusCreated, film)
}

// GetFilm returns a single film. Private films are visible to their
// owner only.
func (h *FilmHandler) GetFilm(c echo.Context) error {
	film, err := h.findFilm(c)
	if err != nil {
		return err
	}

	if !film.IsPublic && film.OwnerID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusForbidden, "No access to this film")
	}

	return c.JSON(http.StatusOK, film)
}

// GetMyFilms lists the authenticated user's films with search and
// pagination, newest first
func (h *FilmHandler) GetMyFilms(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	query := c.QueryParam("search")
	page, pageSize := pageParams(c)

	films, total, err := h.filmRepository.ListByOwner(userID, query, (page-1)*pageSize, pageSize)
	if err != nil {
		log.Error().Err(err).Msg("my films: list failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"films":       films,
		"page":        page,
		"total":       total,
		"total_pages": int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// UpdateFilm replaces the mutable fields of an owned film
func (h *FilmHandler) UpdateFilm(c echo.Context) error {
	film, err := h.findOwnedFilm(c)
	if err != nil {
		return err
	}

	var req models.UpdateFilmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	film.Title = req.Title
	film.Content = req.Content
	film.Description = req.Description
	film.IsPublic = req.IsPublic

	if err := h.filmRepository.UpdateFilm(film); err != nil {
		log.Error().Err(err).Str("film_id", film.ID).Msg("update film: save failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, film)
}

// DeleteFilm removes an owned film
func (h *FilmHandler) DeleteFilm(c echo.Context) error {
	film, err := h.findOwnedFilm(c)
	if err != nil {
		return err
	}

	if err := h.filmRepository.DeleteFilm(film.ID); err != nil {
		log.Error().Err(err).Str("film_id", film.ID).Msg("delete film: delete failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.NoContent(http.StatusNoContent)
}

// TogglePublic flips the visibility of an owned film
func (h *FilmHandler) TogglePublic(c echo.Context) error {
	film, err := h.findOwnedFilm(c)
	if err != nil {
		return err
	}

	film.IsPublic = !film.IsPublic
	if err := h.filmRepository.UpdateFilm(film); err != nil {
		log.Error().Err(err).Str("film_id", film.ID).Msg("toggle public: save failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, film)
}

// ToggleFavorite flips the owner-only favorite flag
func (h *FilmHandler) ToggleFavorite(c echo.Context) error {
	film, err := h.findOwnedFilm(c)
	if err != nil {
		return err
	}

	film.IsFavorite = !film.IsFavorite
	if err := h.filmRepository.UpdateFilm(film); err != nil {
		log.Error().Err(err).Str("film_id", film.ID).Msg("toggle favorite: save failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, film)
}

// findFilm loads the film from the path parameter
func (h *FilmHandler) findFilm(c echo.Context) (*models.Film, error) {
	filmID := c.Param("id")
	film, err := h.filmRepository.GetFilmByID(filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Film not found")
		}
		log.Error().Err(err).Str("film_id", filmID).Msg("film lookup failed")
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	return film, nil
}

// findOwnedFilm loads the film and enforces the ownership gate before
// any mutation
func (h *FilmHandler) findOwnedFilm(c echo.Context) (*models.Film, error) {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	film, err := h.findFilm(c)
	if err != nil {
		return nil, err
	}

	if film.OwnerID != userID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Only the owner can modify this film")
	}
	return film, nil
}

// pageParams reads page/limit query params with the listing defaults
func pageParams(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	pageSize, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 50 {
		pageSize = 50
	}
	return page, pageSize
}
