package repositories

import (
	"fmt"

	"github.com/Artser/ProStore/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(userID uint, filmID string) error
	HasUserLikedFilm(userID uint, filmID string) (bool, error)
	GetLikesCountByFilmID(filmID string) (int64, error)
	GetLikesCountForFilms(filmIDs []string) (map[string]int64, error)
	GetLikedFilmIDs(userID uint, filmIDs []string) (map[string]bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts the like row. The (user_id, film_id) unique index
// makes a duplicate insert fail with gorm.ErrDuplicatedKey, which the
// toggle endpoint resolves by re-reading state.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike removes the like row for (userID, filmID)
func (r *PostgresLikeRepository) DeleteLike(userID uint, filmID string) error {
	res := r.db.Where("user_id = ? AND film_id = ?", userID, filmID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("like not found")
	}
	return nil
}

// HasUserLikedFilm checks whether the like row exists
func (r *PostgresLikeRepository) HasUserLikedFilm(userID uint, filmID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND film_id = ?", userID, filmID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByFilmID recomputes the aggregate count for one film
func (r *PostgresLikeRepository) GetLikesCountByFilmID(filmID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("film_id = ?", filmID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikesCountForFilms returns like counts keyed by film ID. Films with
// no likes are absent from the map.
func (r *PostgresLikeRepository) GetLikesCountForFilms(filmIDs []string) (map[string]int64, error) {
	result := make(map[string]int64)
	if len(filmIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		FilmID string
		Count  int64
	}
	err := r.db.Model(&models.Like{}).
		Select("film_id, count(*) as count").
		Where("film_id IN ?", filmIDs).
		Group("film_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.FilmID] = row.Count
	}
	return result, nil
}

// GetLikedFilmIDs returns which of the given films the user has liked
func (r *PostgresLikeRepository) GetLikedFilmIDs(userID uint, filmIDs []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(filmIDs) == 0 {
		return result, nil
	}
	var likes []models.Like
	err := r.db.Where("user_id = ? AND film_id IN ?", userID, filmIDs).Find(&likes).Error
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.FilmID] = true
	}
	return result, nil
}
