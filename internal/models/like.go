package models

import "time"

// Like is the unique fact "this user liked this film". The composite
// unique index is what keeps duplicate concurrent toggles consistent.
//
// Likes are hard-deleted on toggle-off: a soft-deleted row would still
// occupy the unique index and block re-liking.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_likes_user_film"`
	FilmID    string    `json:"film_id" gorm:"uniqueIndex:idx_likes_user_film;index"`
	Film      Film      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeResult is the response body of the like toggle endpoint
type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
