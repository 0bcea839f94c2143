package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Film represents a user-owned content entry
type Film struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Description string    `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public" gorm:"index"`
	IsFavorite  bool      `json:"is_favorite"` // Owner-only flag
	OwnerID     uint      `json:"owner_id" gorm:"index"`
	Owner       User      `json:"-" gorm:"foreignKey:OwnerID"`
	CategoryID  uint      `json:"category_id"`
	Tags        []Tag     `json:"-" gorm:"many2many:film_tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when none is set
func (f *Film) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// CreateFilmRequest defines the request body for creating a new film
type CreateFilmRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Content     string `json:"content" validate:"required,min=1"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateFilmRequest defines the request body for updating an existing film
type UpdateFilmRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Content     string `json:"content" validate:"required,min=1"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsPublic    bool   `json:"is_public"`
}

// PublicFilm is a film enriched with aggregate and viewer-specific data
// for listing responses. LikedByMe is omitted for anonymous viewers.
type PublicFilm struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	LikesCount  int64       `json:"likes_count"`
	LikedByMe   *bool       `json:"liked_by_me,omitempty"`
	Owner       UserCompact `json:"owner"`
	Tags        []string    `json:"tags"`
}
