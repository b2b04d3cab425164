package models

import "time"

// Activity log actions recorded by the application layer and composite
// repository operations.
const (
	ActionVehicleCreated       = "vehicle_created"
	ActionVehicleUpdated       = "vehicle_updated"
	ActionVehicleAssigned      = "vehicle_assigned"
	ActionMaintenanceScheduled = "maintenance_scheduled"
	ActionMaintenanceCompleted = "maintenance_completed"
	ActionFuelReported         = "fuel_reported"
)

// ActivityLog is an append-only audit trail entry. UserID and VehicleID
// are loose references and may both be absent.
type ActivityLog struct {
	ID          int64     `json:"id" db:"id"`
	UserID      *int64    `json:"userId" db:"user_id"`
	VehicleID   *int64    `json:"vehicleId" db:"vehicle_id"`
	Action      string    `json:"action" db:"action"`
	Description string    `json:"description" db:"description"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

// ActivityEntry is an activity log enriched with user and vehicle
// summaries for display.
type ActivityEntry struct {
	ActivityLog
	User    *UserSummary    `json:"user"`
	Vehicle *VehicleSummary `json:"vehicle"`
}
