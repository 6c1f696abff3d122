// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents one registered account holder.
// PasswordHash is internal state; it must never cross a client-facing
// boundary. Use ToSafeUser for anything that leaves the process.
type User struct {
	ID           uuid.UUID // Opaque unique identifier, assigned at creation.
	Name         string    // Display name, non-empty.
	Email        string    // Login identifier, unique, stored lower-cased.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	Role         Role      // Account role, defaults to RoleCreator.
	CreatedAt    time.Time // Assigned at creation, immutable.
	UpdatedAt    time.Time
}

// SafeUser is the client-facing projection of a User. It carries
// everything a client may see and nothing it may not.
type SafeUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToSafeUser is the only sanctioned way to produce a client-facing user
// value. It strips the password hash.
func ToSafeUser(u *User) *SafeUser {
	if u == nil {
		return nil
	}

	return &SafeUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
