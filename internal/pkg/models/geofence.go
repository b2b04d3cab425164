package models

import "time"

// Geofence is a named polygon against which vehicle positions are
// evaluated. Coordinates is a JSON array of [latitude, longitude] pairs.
type Geofence struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Coordinates string    `json:"coordinates" db:"coordinates"`
	Active      bool      `json:"active" db:"active"`
	CreatedBy   *int64    `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CreateGeofenceRequest is the payload for geofence creation.
type CreateGeofenceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Coordinates string `json:"coordinates" validate:"required"`
	Active      *bool  `json:"active"`
}

// GeofencePatch carries a partial geofence update; nil fields are left
// untouched.
type GeofencePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Coordinates *string `json:"coordinates"`
	Active      *bool   `json:"active"`
}
