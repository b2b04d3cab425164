package models

import "time"

// GpsLocation is a single tracked position of a vehicle. Timestamp and
// Geohash are assigned server-side at insertion; clients never supply them.
type GpsLocation struct {
	ID        int64     `json:"id" db:"id"`
	VehicleID int64     `json:"vehicleId" db:"vehicle_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Speed     int       `json:"speed" db:"speed"`
	Geohash   string    `json:"geohash" db:"geohash"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// CreateGpsLocationRequest is the payload for recording a location point.
type CreateGpsLocationRequest struct {
	VehicleID int64   `json:"vehicleId" validate:"required,gt=0"`
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Speed     int     `json:"speed" validate:"gte=0"`
}
