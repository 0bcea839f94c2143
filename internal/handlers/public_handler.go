package handlers

import (
	"math"
	"net/http"

	"github.com/Artser/ProStore/internal/models"
	"github.com/Artser/ProStore/internal/ranking"
	"github.com/Artser/ProStore/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// popularFetchCap bounds the candidate set materialized for popularity
// ranking. Results beyond the cap are an approximation.
const popularFetchCap = 1000

// highlightsLimit is the section size on the home endpoint
const highlightsLimit = 12

// PublicFilmHandler serves the public catalog: search, ranked listing,
// pagination and home-page highlights
type PublicFilmHandler struct {
	filmRepository repositories.FilmRepository
	likeRepository repositories.LikeRepository
}

// NewPublicFilmHandler creates a new PublicFilmHandler
func NewPublicFilmHandler(filmRepo repositories.FilmRepository, likeRepo repositories.LikeRepository) *PublicFilmHandler {
	return &PublicFilmHandler{
		filmRepository: filmRepo,
		likeRepository: likeRepo,
	}
}

// RegisterPublicRoutes registers the public listing routes
func (h *PublicFilmHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/films", h.ListPublicFilms)
	g.GET("/films/highlights", h.GetHighlights)
}

// ListPublicFilms lists public films: filter, then rank, then paginate.
// Ranking always sees the full filtered set (up to the fetch cap for
// popular mode), never a pre-paginated slice.
func (h *PublicFilmHandler) ListPublicFilms(c echo.Context) error {
	userID := getUserIDFromContext(c)
	query := c.QueryParam("search")
	mode := ranking.ParseMode(c.QueryParam("sort"))
	page, pageSize := pageParams(c)

	total, err := h.filmRepository.CountPublic(query)
	if err != nil {
		log.Error().Err(err).Msg("public films: count failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	skip := (page - 1) * pageSize

	var items []models.PublicFilm
	if mode == ranking.Popular {
		// Popularity needs every candidate's like count before any
		// ordering decision, so materialize the filtered set first.
		films, err := h.filmRepository.ListPublicCandidates(query, popularFetchCap)
		if err != nil {
			log.Error().Err(err).Msg("public films: candidate fetch failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		items, err = h.enrich(films, userID)
		if err != nil {
			log.Error().Err(err).Msg("public films: enrich failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		ranking.Sort(items, ranking.Popular)
		items = pageWindow(items, skip, pageSize)
	} else {
		// Recency is an indexed column order; let the store window it.
		films, err := h.filmRepository.ListPublicRecent(query, skip, pageSize)
		if err != nil {
			log.Error().Err(err).Msg("public films: recent fetch failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}

		items, err = h.enrich(films, userID)
		if err != nil {
			log.Error().Err(err).Msg("public films: enrich failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"films":       items,
		"page":        page,
		"total":       total,
		"total_pages": int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// GetHighlights returns the home-page sections: most recent and most
// popular public films
func (h *PublicFilmHandler) GetHighlights(c echo.Context) error {
	userID := getUserIDFromContext(c)

	recentFilms, err := h.filmRepository.ListPublicRecent("", 0, highlightsLimit)
	if err != nil {
		log.Error().Err(err).Msg("highlights: recent fetch failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	recent, err := h.enrich(recentFilms, userID)
	if err != nil {
		log.Error().Err(err).Msg("highlights: enrich failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	candidates, err := h.filmRepository.ListPublicCandidates("", popularFetchCap)
	if err != nil {
		log.Error().Err(err).Msg("highlights: candidate fetch failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	popular, err := h.enrich(candidates, userID)
	if err != nil {
		log.Error().Err(err).Msg("highlights: enrich failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
	ranking.Sort(popular, ranking.Popular)
	popular = pageWindow(popular, 0, highlightsLimit)

	return c.JSON(http.StatusOK, echo.Map{
		"recent":  recent,
		"popular": popular,
	})
}

// enrich attaches like counts, the viewer's liked flags, owner info and
// tag names to a fetched film set
func (h *PublicFilmHandler) enrich(films []models.Film, userID uint) ([]models.PublicFilm, error) {
	filmIDs := make([]string, len(films))
	for i, f := range films {
		filmIDs[i] = f.ID
	}

	counts, err := h.likeRepository.GetLikesCountForFilms(filmIDs)
	if err != nil {
		return nil, err
	}

	var likedMap map[string]bool
	if userID > 0 {
		likedMap, err = h.likeRepository.GetLikedFilmIDs(userID, filmIDs)
		if err != nil {
			return nil, err
		}
	}

	items := make([]models.PublicFilm, len(films))
	for i, f := range films {
		tags := make([]string, len(f.Tags))
		for j, t := range f.Tags {
			tags[j] = t.Name
		}

		item := models.PublicFilm{
			ID:          f.ID,
			Title:       f.Title,
			Content:     f.Content,
			Description: f.Description,
			CreatedAt:   f.CreatedAt,
			LikesCount:  counts[f.ID],
			Owner:       f.Owner.ToCompact(),
			Tags:        tags,
		}
		if userID > 0 {
			liked := likedMap[f.ID]
			item.LikedByMe = &liked
		}
		items[i] = item
	}
	return items, nil
}

// pageWindow slices [skip, skip+size) clamped to the list bounds
func pageWindow(items []models.PublicFilm, skip, size int) []models.PublicFilm {
	if skip >= len(items) {
		return []models.PublicFilm{}
	}
	end := skip + size
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
