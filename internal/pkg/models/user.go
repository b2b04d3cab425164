package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is one of the four fixed authorization levels.
type Role string

const (
	RoleRider           Role = "rider"
	RoleFleetSupervisor Role = "fleet_supervisor"
	RoleAdmin           Role = "admin"
	RoleSuperAdmin      Role = "super_admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleRider, RoleFleetSupervisor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents a fleet system account (rider, supervisor or admin).
type User struct {
	ID           int64     `json:"id" db:"id"`
	UUID         uuid.UUID `json:"uuid" db:"uuid"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"-" db:"password"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Role         Role      `json:"role" db:"role"`
	Phone        string    `json:"phone" db:"phone"`
	ProfileImage string    `json:"profileImage" db:"profile_image"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// UserSummary is the short form embedded in enriched activity entries.
type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Summary returns the short form of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

// CreateUserRequest is the payload for user creation.
type CreateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Role         Role   `json:"role" validate:"required,oneof=rider fleet_supervisor admin super_admin"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage"`
	Active       *bool  `json:"active"`
}

// UserPatch carries a partial user update; nil fields are left untouched.
type UserPatch struct {
	Email        *string `json:"email" validate:"omitempty,email"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Role         *Role   `json:"role" validate:"omitempty,oneof=rider fleet_supervisor admin super_admin"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profileImage"`
	Active       *bool   `json:"active"`
}

// LoginRequest is the payload for session creation.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
