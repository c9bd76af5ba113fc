package models

import "github.com/google/uuid"

// Role groups users by permission level. New registrations get the default
// "User" role.
type Role struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Firstname string    `json:"firstname" db:"firstname"`
	Lastname  string    `json:"lastname" db:"lastname"`
	Password  string    `json:"-" db:"password_hash"`
	Active    bool      `json:"active" db:"is_active"`
	Role      *Role     `json:"role,omitempty"`
}

// Credentials is the sign-in payload. Never persisted as-is.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserFilter narrows user lookups. Email is required; ActiveOnly restricts
// the match to active accounts.
type UserFilter struct {
	Email      string
	ActiveOnly bool
}
