package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password   string `json:"-"`                        // Store hashed password, ignore for JSON serialization

	// Link to Firebase User UID for Google sign-in. Nil for local
	// accounts: the column is under a unique index and Postgres only
	// tolerates duplicate NULLs, not duplicate empty strings.
	FirebaseUID *string `json:"firebase_uid,omitempty" gorm:"uniqueIndex"`
}

// UserCompact is the minimal owner info embedded in film responses
type UserCompact struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:   u.ID,
		Name: u.Name,
	}
}

type CreateLocalUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
