package model

import "time"

// User represents a user document in the users collection.
// PasswordHash never leaves the server: it is excluded from JSON and from
// token claims.
type User struct {
	ID             string    `bson:"_id" json:"_id"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	Name           string    `bson:"name" json:"name"`
	AccountBalance float64   `bson:"account_balance" json:"account_balance"`
	IsAdmin        bool      `bson:"is_admin" json:"is_admin"`
	AllPictures    []string  `bson:"all_pictures" json:"all_pictures"`
	OnboardingDate time.Time `bson:"onboarding_date" json:"onboarding_date"`
}

// RegisterRequest represents a registration request body.
type RegisterRequest struct {
	Email          string  `json:"user"`
	Password       string  `json:"pass"`
	Name           string  `json:"name"`
	AccountBalance float64 `json:"account_balance"`
	IsAdmin        bool    `json:"is_admin"`
}

// LoginRequest represents a login request body.
type LoginRequest struct {
	Email    string `json:"user"`
	Password string `json:"pass"`
}

// AuthResponse carries a freshly issued token. ID is set on registration only.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      string `json:"_id,omitempty"`
}

// UserUpdate is a partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	IsAdmin  *bool   `json:"is_admin"`
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.Password == nil && u.Name == nil && u.IsAdmin == nil
}
