package models

import "gorm.io/gorm"

// DefaultCategoryName is assigned to films created without a category.
const DefaultCategoryName = "Uncategorized"

// Category groups films
type Category struct {
	gorm.Model
	ID       uint   `json:"id" gorm:"primaryKey"`
	Category string `json:"category" gorm:"uniqueIndex"`
}
