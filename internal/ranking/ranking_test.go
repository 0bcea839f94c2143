package ranking

import (
	"testing"
	"time"

	"github.com/Artser/ProStore/internal/models"
)

func film(id string, likes int64, createdAt time.Time) models.PublicFilm {
	return models.PublicFilm{ID: id, LikesCount: likes, CreatedAt: createdAt}
}

func ids(films []models.PublicFilm) []string {
	out := make([]string, len(films))
	for i, f := range films {
		out[i] = f.ID
	}
	return out
}

func assertOrder(t *testing.T, got []models.PublicFilm, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d films, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q (full order %v)", i, got[i].ID, id, ids(got))
		}
	}
}

func TestSortRecent(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	films := []models.PublicFilm{
		film("a", 0, t1),
		film("b", 9, t3),
		film("c", 5, t2),
	}

	Sort(films, Recent)
	assertOrder(t, films, []string{"b", "c", "a"})
}

func TestSortPopular(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		films []models.PublicFilm
		want  []string
	}{
		{
			name: "orders by like count descending",
			films: []models.PublicFilm{
				film("a", 1, t1),
				film("b", 10, t1.Add(time.Minute)),
				film("c", 5, t1.Add(2 * time.Minute)),
			},
			want: []string{"b", "c", "a"},
		},
		{
			name: "ties broken by recency, newer first",
			films: []models.PublicFilm{
				film("older", 5, t1),
				film("newer", 5, t1.Add(time.Hour)),
			},
			want: []string{"newer", "older"},
		},
		{
			name: "tie-break applies within equal counts only",
			films: []models.PublicFilm{
				film("a", 3, t1.Add(3 * time.Hour)),
				film("b", 7, t1),
				film("c", 3, t1.Add(time.Hour)),
				film("d", 7, t1.Add(2 * time.Hour)),
			},
			want: []string{"d", "b", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Sort(tt.films, Popular)
			assertOrder(t, tt.films, tt.want)
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"popular", Popular},
		{"recent", Recent},
		{"", Recent},
		{"unknown", Recent},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
