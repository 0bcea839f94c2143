package models

import "gorm.io/gorm"

// Note is a minimal titled record kept around for seed/demo data
type Note struct {
	gorm.Model
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"title"`
}
