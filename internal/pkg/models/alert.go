package models

import "time"

// AlertType classifies a fleet alert.
type AlertType string

const (
	AlertGeofenceExit   AlertType = "geofence_exit"
	AlertGeofenceEnter  AlertType = "geofence_enter"
	AlertMaintenanceDue AlertType = "maintenance_due"
	AlertSpeedLimit     AlertType = "speed_limit"
	AlertIdleTime       AlertType = "idle_time"
)

// Alert is a notification raised against a vehicle. Read transitions
// false to true only; alerts are never deleted.
type Alert struct {
	ID        int64     `json:"id" db:"id"`
	VehicleID *int64    `json:"vehicleId" db:"vehicle_id"`
	Type      AlertType `json:"type" db:"type"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
