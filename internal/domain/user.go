// internal/domain/user.go
package domain

import "time"

// User represents a registered rider. Users are immutable after signup.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"` // unique
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

// NewUser creates a new User instance with the given bcrypt hash.
func NewUser(id, name, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
