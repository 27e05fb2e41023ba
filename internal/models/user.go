package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	FirstName    string    `json:"firstName" db:"first_name"`  // Given name
	LastName     string    `json:"lastName" db:"last_name"`    // Family name
	Email        string    `json:"email" db:"email"`           // Unique email
	Phone        string    `json:"phone" db:"phone"`           // Contact phone
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`  // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`  // Last update timestamp
}
