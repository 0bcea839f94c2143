// Package admin exposes a closed set of browsable database resources.
// Each resource is a typed schema registered by name; there is no
// reflective dispatch over storage internals.
package admin

import "github.com/Artser/ProStore/internal/models"

// Resource describes one browsable table
type Resource struct {
	Name    string
	Table   string
	OrderBy string
	// HasID reports whether rows carry a single numeric-or-string id
	// that mutations can target. Join tables are browse-only.
	HasID bool
	// NewRecord returns a pointer to a zero value of the row type
	NewRecord func() interface{}
	// NewSlice returns a pointer to an empty slice of the row type
	NewSlice func() interface{}
}

var registry = []Resource{
	{
		Name:      "users",
		Table:     "users",
		OrderBy:   "id ASC",
		HasID:     true,
		NewRecord: func() interface{} { return &models.User{} },
		NewSlice:  func() interface{} { return &[]models.User{} },
	},
	{
		Name:      "films",
		Table:     "films",
		OrderBy:   "id ASC",
		HasID:     true,
		NewRecord: func() interface{} { return &models.Film{} },
		NewSlice:  func() interface{} { return &[]models.Film{} },
	},
	{
		Name:      "likes",
		Table:     "likes",
		OrderBy:   "id ASC",
		HasID:     true,
		NewRecord: func() interface{} { return &models.Like{} },
		NewSlice:  func() interface{} { return &[]models.Like{} },
	},
	{
		Name:      "categories",
		Table:     "categories",
		OrderBy:   "id ASC",
		HasID:     true,
		NewRecord: func() interface{} { return &models.Category{} },
		NewSlice:  func() interface{} { return &[]models.Category{} },
	},
	{
		Name:      "tags",
		Table:     "tags",
		OrderBy:   "id ASC",
		HasID:     true,
		NewRecord: func() interface{} { return &models.Tag{} },
		NewSlice:  func() interface{} { return &[]models.Tag{} },
	},
	{
		Name:      "film_tags",
		Table:     "film_tags",
		OrderBy:   "film_id ASC",
		HasID:     false,
		NewRecord: func() interface{} { return &models.FilmTag{} },
		NewSlice:  func() interface{} { return &[]models.FilmTag{} },
	},
	{
		Name:      "notes",
		Table:     "notes",
		OrderBy:   "id ASC",
		HasID:     true,
		NewRecord: func() interface{} { return &models.Note{} },
		NewSlice:  func() interface{} { return &[]models.Note{} },
	},
}

// Resources returns the full closed set, in registration order
func Resources() []Resource {
	return registry
}

// Lookup finds a resource by name
func Lookup(name string) (Resource, bool) {
	for _, r := range registry {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}
