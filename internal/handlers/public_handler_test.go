package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Artser/ProStore/internal/models"
	"github.com/labstack/echo/v4"
)

type listingResponse struct {
	Films      []models.PublicFilm `json:"films"`
	Page       int                 `json:"page"`
	Total      int64               `json:"total"`
	TotalPages int                 `json:"total_pages"`
}

func newListingContext(t *testing.T, query string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID > 0 {
		c.Set("userID", userID)
	}
	return c, rec
}

func decodeListing(t *testing.T, rec *httptest.ResponseRecorder) listingResponse {
	t.Helper()
	var resp listingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func seedPublicFilms(n int) *stubFilmRepository {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubFilmRepository{}
	for i := 0; i < n; i++ {
		repo.films = append(repo.films, models.Film{
			ID:        fmt.Sprintf("film-%02d", i),
			Title:     fmt.Sprintf("Film %02d", i),
			Content:   "content",
			IsPublic:  true,
			OwnerID:   1,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return repo
}

func TestListPublicFilmsPagination(t *testing.T) {
	h := NewPublicFilmHandler(seedPublicFilms(25), newStubLikeRepository())

	// 25 filtered items, pageSize 10, page 3: last page holds 5
	c, rec := newListingContext(t, "page=3&limit=10", 0)
	if err := h.ListPublicFilms(c); err != nil {
		t.Fatalf("ListPublicFilms: %v", err)
	}

	resp := decodeListing(t, rec)
	if len(resp.Films) != 5 {
		t.Errorf("got %d films on page 3, want 5", len(resp.Films))
	}
	if resp.Total != 25 {
		t.Errorf("got total=%d, want 25", resp.Total)
	}
	if resp.TotalPages != 3 {
		t.Errorf("got total_pages=%d, want 3", resp.TotalPages)
	}
}

func TestListPublicFilmsPaginationPopularMode(t *testing.T) {
	h := NewPublicFilmHandler(seedPublicFilms(25), newStubLikeRepository())

	c, rec := newListingContext(t, "page=3&limit=10&sort=popular", 0)
	if err := h.ListPublicFilms(c); err != nil {
		t.Fatalf("ListPublicFilms: %v", err)
	}

	resp := decodeListing(t, rec)
	if len(resp.Films) != 5 || resp.TotalPages != 3 {
		t.Errorf("got %d films, total_pages=%d; want 5 and 3", len(resp.Films), resp.TotalPages)
	}
}

func TestListPublicFilmsPopularOrder(t *testing.T) {
	t1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	filmRepo := &stubFilmRepository{films: []models.Film{
		{ID: "a", Title: "A", Content: "c", IsPublic: true, OwnerID: 1, CreatedAt: t1},
		{ID: "b", Title: "B", Content: "c", IsPublic: true, OwnerID: 1, CreatedAt: t1.Add(time.Hour)},
		{ID: "c", Title: "C", Content: "c", IsPublic: true, OwnerID: 1, CreatedAt: t1.Add(2 * time.Hour)},
	}}
	likeRepo := newStubLikeRepository()
	// a and b tie on 2 likes; b is newer so it wins. c has none.
	likeRepo.likes[likeKey{1, "a"}] = true
	likeRepo.likes[likeKey{2, "a"}] = true
	likeRepo.likes[likeKey{3, "b"}] = true
	likeRepo.likes[likeKey{4, "b"}] = true
	h := NewPublicFilmHandler(filmRepo, likeRepo)

	c, rec := newListingContext(t, "sort=popular", 0)
	if err := h.ListPublicFilms(c); err != nil {
		t.Fatalf("ListPublicFilms: %v", err)
	}

	resp := decodeListing(t, rec)
	want := []string{"b", "a", "c"}
	for i, id := range want {
		if resp.Films[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, resp.Films[i].ID, id)
		}
	}
}

func TestListPublicFilmsSearchMatchesDescription(t *testing.T) {
	filmRepo := &stubFilmRepository{films: []models.Film{
		{ID: "a", Title: "Plain title", Content: "plain content", Description: "hidden Gem here", IsPublic: true, OwnerID: 1, CreatedAt: time.Now()},
		{ID: "b", Title: "Other", Content: "other", IsPublic: true, OwnerID: 1, CreatedAt: time.Now()},
	}}
	h := NewPublicFilmHandler(filmRepo, newStubLikeRepository())

	// Query only appears in the description field
	c, rec := newListingContext(t, "search=gem", 0)
	if err := h.ListPublicFilms(c); err != nil {
		t.Fatalf("ListPublicFilms: %v", err)
	}

	resp := decodeListing(t, rec)
	if len(resp.Films) != 1 || resp.Films[0].ID != "a" {
		t.Errorf("got %d films (first %v), want the description match only", len(resp.Films), resp.Films)
	}
	if resp.Total != 1 {
		t.Errorf("got total=%d, want 1", resp.Total)
	}
}

func TestListPublicFilmsExcludesPrivate(t *testing.T) {
	filmRepo := &stubFilmRepository{films: []models.Film{
		{ID: "pub", Title: "t", Content: "c", IsPublic: true, OwnerID: 1, CreatedAt: time.Now()},
		{ID: "priv", Title: "t", Content: "c", IsPublic: false, OwnerID: 1, CreatedAt: time.Now()},
	}}
	h := NewPublicFilmHandler(filmRepo, newStubLikeRepository())

	c, rec := newListingContext(t, "", 0)
	if err := h.ListPublicFilms(c); err != nil {
		t.Fatalf("ListPublicFilms: %v", err)
	}

	resp := decodeListing(t, rec)
	if len(resp.Films) != 1 || resp.Films[0].ID != "pub" {
		t.Errorf("private films leaked into the public listing: %v", resp.Films)
	}
}

func TestListPublicFilmsLikedByMe(t *testing.T) {
	filmRepo := seedPublicFilms(2)
	likeRepo := newStubLikeRepository()
	likeRepo.likes[likeKey{9, "film-00"}] = true
	h := NewPublicFilmHandler(filmRepo, likeRepo)

	// Anonymous viewers get no liked_by_me field at all
	c, rec := newListingContext(t, "", 0)
	if err := h.ListPublicFilms(c); err != nil {
		t.Fatalf("ListPublicFilms: %v", err)
	}
	for _, f := range decodeListing(t, rec).Films {
		if f.LikedByMe != nil {
			t.Errorf("film %s: liked_by_me set for anonymous viewer", f.ID)
		}
	}

	// Authenticated viewers see their own flags
	c, rec = newListingContext(t, "", 9)
	if err := h.ListPublicFilms(c); err != nil {
		t.Fatalf("ListPublicFilms: %v", err)
	}
	for _, f := range decodeListing(t, rec).Films {
		if f.LikedByMe == nil {
			t.Fatalf("film %s: liked_by_me missing for authenticated viewer", f.ID)
		}
		want := f.ID == "film-00"
		if *f.LikedByMe != want {
			t.Errorf("film %s: got liked_by_me=%v, want %v", f.ID, *f.LikedByMe, want)
		}
	}
}

func TestGetHighlights(t *testing.T) {
	filmRepo := seedPublicFilms(20)
	likeRepo := newStubLikeRepository()
	// film-03 is the clear popularity leader
	likeRepo.likes[likeKey{1, "film-03"}] = true
	likeRepo.likes[likeKey{2, "film-03"}] = true
	h := NewPublicFilmHandler(filmRepo, likeRepo)

	c, rec := newListingContext(t, "", 0)
	if err := h.GetHighlights(c); err != nil {
		t.Fatalf("GetHighlights: %v", err)
	}

	var resp struct {
		Recent  []models.PublicFilm `json:"recent"`
		Popular []models.PublicFilm `json:"popular"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Recent) != 12 || len(resp.Popular) != 12 {
		t.Errorf("got %d recent / %d popular, want 12 each", len(resp.Recent), len(resp.Popular))
	}
	if resp.Recent[0].ID != "film-19" {
		t.Errorf("recent[0] = %q, want the newest film", resp.Recent[0].ID)
	}
	if resp.Popular[0].ID != "film-03" {
		t.Errorf("popular[0] = %q, want film-03", resp.Popular[0].ID)
	}
}
