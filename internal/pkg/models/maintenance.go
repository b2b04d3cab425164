package models

import "time"

// Maintenance is a scheduled or completed service record for a vehicle.
// Cost is in cents.
type Maintenance struct {
	ID            int64      `json:"id" db:"id"`
	VehicleID     int64      `json:"vehicleId" db:"vehicle_id"`
	Type          string     `json:"type" db:"type"`
	Description   string     `json:"description" db:"description"`
	ScheduledDate time.Time  `json:"scheduledDate" db:"scheduled_date"`
	CompletedDate *time.Time `json:"completedDate" db:"completed_date"`
	Cost          int64      `json:"cost" db:"cost"`
	Technician    string     `json:"technician" db:"technician"`
	Notes         string     `json:"notes" db:"notes"`
	CreatedBy     *int64     `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

// Completed reports whether the record has been marked done.
func (m *Maintenance) Completed() bool {
	return m.CompletedDate != nil
}

// CreateMaintenanceRequest is the payload for scheduling maintenance.
type CreateMaintenanceRequest struct {
	VehicleID     int64      `json:"vehicleId" validate:"required,gt=0"`
	Type          string     `json:"type" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	ScheduledDate *time.Time `json:"scheduledDate" validate:"required"`
	Cost          int64      `json:"cost" validate:"gte=0"`
	Technician    string     `json:"technician"`
	Notes         string     `json:"notes"`
}

// MaintenancePatch carries a partial maintenance update; nil fields are
// left untouched.
type MaintenancePatch struct {
	Type          *string    `json:"type"`
	Description   *string    `json:"description"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
	Cost          *int64     `json:"cost" validate:"omitempty,gte=0"`
	Technician    *string    `json:"technician"`
	Notes         *string    `json:"notes"`
}

// CompleteMaintenanceRequest is the payload for marking a record done.
// CompletedDate defaults to the current time when omitted.
type CompleteMaintenanceRequest struct {
	CompletedDate *time.Time `json:"completedDate"`
	Notes         string     `json:"notes"`
}
