package models

import (
	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID   uuid.UUID `json:"id" db:"user_id"`        // Primary key
	Username string    `json:"username" db:"username"` // Display name, duplicates allowed
}
