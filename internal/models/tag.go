package models

import "gorm.io/gorm"

// Tag is a label that can be attached to many films
type Tag struct {
	gorm.Model
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex"`
}

// FilmTag mirrors the film/tag join table so the admin viewer can browse
// it. The table itself is created by the Film.Tags relation.
type FilmTag struct {
	FilmID string `json:"film_id" gorm:"primaryKey"`
	TagID  uint   `json:"tag_id" gorm:"primaryKey"`
}

func (FilmTag) TableName() string {
	return "film_tags"
}
