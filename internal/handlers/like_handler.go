package handlers

import (
	"errors"
	"net/http"

	"github.com/Artser/ProStore/internal/models"
	"github.com/Artser/ProStore/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	filmRepository repositories.FilmRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, filmRepo repositories.FilmRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		filmRepository: filmRepo,
	}
}

// RegisterLikeRoutes registers the like routes that require a login
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/films/:id/like", h.ToggleLike)
}

// RegisterLikeReadRoutes registers the anonymous-friendly like reads
func (h *LikeHandler) RegisterLikeReadRoutes(g *echo.Group) {
	g.GET("/films/:id/likes/count", h.GetLikesCountForFilm)
}

// ToggleLike flips the authenticated user's like for a public film and
// returns {liked, likes_count}.
//
// A duplicate concurrent submission can make the create step hit the
// (user_id, film_id) unique index. That conflict is not an error from
// the caller's point of view: the current state is re-read and returned
// as a normal success, so the toggle is safe to retry.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	filmID := c.Param("id")

	film, err := h.filmRepository.GetFilmByID(filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Film not found")
		}
		log.Error().Err(err).Str("film_id", filmID).Msg("toggle like: film lookup failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	if !film.IsPublic {
		return echo.NewHTTPError(http.StatusForbidden, "Only public films can be liked")
	}

	hasLiked, err := h.likeRepository.HasUserLikedFilm(userID, filmID)
	if err != nil {
		log.Error().Err(err).Str("film_id", filmID).Msg("toggle like: existence check failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	var liked bool
	if hasLiked {
		if err := h.likeRepository.DeleteLike(userID, filmID); err != nil {
			log.Error().Err(err).Str("film_id", filmID).Msg("toggle like: delete failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
		liked = false
	} else {
		err := h.likeRepository.CreateLike(&models.Like{UserID: userID, FilmID: filmID})
		switch {
		case err == nil:
			liked = true
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// Lost a race against an identical request. Whatever state
			// won is the answer; re-read it instead of failing.
			liked, err = h.likeRepository.HasUserLikedFilm(userID, filmID)
			if err != nil {
				log.Error().Err(err).Str("film_id", filmID).Msg("toggle like: re-read after conflict failed")
				return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
			}
		default:
			log.Error().Err(err).Str("film_id", filmID).Msg("toggle like: create failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
	}

	count, err := h.likeRepository.GetLikesCountByFilmID(filmID)
	if err != nil {
		log.Error().Err(err).Str("film_id", filmID).Msg("toggle like: recount failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, models.LikeResult{Liked: liked, LikesCount: count})
}

// GetLikesCountForFilm retrieves the total number of likes for a film
func (h *LikeHandler) GetLikesCountForFilm(c echo.Context) error {
	filmID := c.Param("id")

	_, err := h.filmRepository.GetFilmByID(filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Film not found")
		}
		log.Error().Err(err).Str("film_id", filmID).Msg("likes count: film lookup failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	count, err := h.likeRepository.GetLikesCountByFilmID(filmID)
	if err != nil {
		log.Error().Err(err).Str("film_id", filmID).Msg("likes count: count failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{"film_id": filmID, "likes_count": count})
}
