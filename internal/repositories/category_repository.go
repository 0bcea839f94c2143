package repositories

import (
	"errors"

	"github.com/Artser/ProStore/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	GetOrCreateDefault() (*models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
}

// PostgresCategoryRepository implements CategoryRepository for PostgreSQL
type PostgresCategoryRepository struct {
	db *gorm.DB
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
func NewPostgresCategoryRepository(db *gorm.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// GetOrCreateDefault returns the first category, creating the default
// one when the table is empty. New films fall into this category.
func (r *PostgresCategoryRepository) GetOrCreateDefault() (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	category = models.Category{Category: models.DefaultCategoryName}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresCategoryRepository) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
