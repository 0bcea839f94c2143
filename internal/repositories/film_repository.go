package repositories

import (
	"github.com/Artser/ProStore/internal/models"
	"gorm.io/gorm"
)

// FilmRepository defines the interface for film data operations
type FilmRepository interface {
	CreateFilm(film *models.Film) error
	GetFilmByID(id string) (*models.Film, error)
	UpdateFilm(film *models.Film) error
	DeleteFilm(id string) error
	ListByOwner(ownerID uint, query string, offset, limit int) ([]models.Film, int64, error)
	ListPublicRecent(query string, offset, limit int) ([]models.Film, error)
	ListPublicCandidates(query string, limit int) ([]models.Film, error)
	CountPublic(query string) (int64, error)
}

// PostgresFilmRepository implements FilmRepository for PostgreSQL
type PostgresFilmRepository struct {
	db *gorm.DB
}

// NewPostgresFilmRepository creates a new PostgresFilmRepository
func NewPostgresFilmRepository(db *gorm.DB) *PostgresFilmRepository {
	return &PostgresFilmRepository{db: db}
}

// searchScope applies the case-insensitive substring filter across
// title, content and description. An empty query matches everything.
func searchScope(query string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query == "" {
			return db
		}
		pattern := "%" + query + "%"
		return db.Where("title ILIKE ? OR content ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
}

func (r *PostgresFilmRepository) CreateFilm(film *models.Film) error {
	return r.db.Create(film).Error
}

func (r *PostgresFilmRepository) GetFilmByID(id string) (*models.Film, error) {
	var film models.Film
	if err := r.db.Preload("Owner").Preload("Tags").Where("id = ?", id).First(&film).Error; err != nil {
		return nil, err
	}
	return &film, nil
}

func (r *PostgresFilmRepository) UpdateFilm(film *models.Film) error {
	return r.db.Save(film).Error
}

func (r *PostgresFilmRepository) DeleteFilm(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Film{}).Error
}

// ListByOwner returns the owner's films newest first, with the filtered
// total for pagination
func (r *PostgresFilmRepository) ListByOwner(ownerID uint, query string, offset, limit int) ([]models.Film, int64, error) {
	base := r.db.Model(&models.Film{}).Where("owner_id = ?", ownerID).Scopes(searchScope(query))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var films []models.Film
	err := r.db.Preload("Tags").
		Where("owner_id = ?", ownerID).
		Scopes(searchScope(query)).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&films).Error
	if err != nil {
		return nil, 0, err
	}
	return films, total, nil
}

// ListPublicRecent pages through public films in recency order. Recency
// is an indexed column order, so the window can be pushed to the store.
func (r *PostgresFilmRepository) ListPublicRecent(query string, offset, limit int) ([]models.Film, error) {
	var films []models.Film
	err := r.db.Preload("Owner").Preload("Tags").
		Where("is_public = ?", true).
		Scopes(searchScope(query)).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&films).Error
	return films, err
}

// ListPublicCandidates materializes the filtered public set, up to limit
// rows, for in-memory popularity ranking. Like counts are aggregates, so
// popularity cannot be a store-level order over an indexed column.
func (r *PostgresFilmRepository) ListPublicCandidates(query string, limit int) ([]models.Film, error) {
	var films []models.Film
	err := r.db.Preload("Owner").Preload("Tags").
		Where("is_public = ?", true).
		Scopes(searchScope(query)).
		Order("created_at DESC").
		Limit(limit).
		Find(&films).Error
	return films, err
}

// CountPublic counts the filtered public set before any pagination
func (r *PostgresFilmRepository) CountPublic(query string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Film{}).
		Where("is_public = ?", true).
		Scopes(searchScope(query)).
		Count(&total).Error
	return total, err
}
