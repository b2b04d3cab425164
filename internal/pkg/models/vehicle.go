package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus is the operational state of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in_use"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleServiceDue  VehicleStatus = "service_due"
)

// ValidVehicleStatus reports whether s is one of the known statuses.
func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleAvailable, VehicleInUse, VehicleMaintenance, VehicleServiceDue:
		return true
	}
	return false
}

// Vehicle represents a motorbike in the fleet. Code is the business
// identifier (e.g. MBK-1023) and is unique across the fleet.
type Vehicle struct {
	ID                  int64         `json:"id" db:"id"`
	UUID                uuid.UUID     `json:"uuid" db:"uuid"`
	Code                string        `json:"vehicleId" db:"vehicle_code"`
	Make                string        `json:"make" db:"make"`
	Model               string        `json:"model" db:"model"`
	Year                int           `json:"year" db:"year"`
	LicensePlate        string        `json:"licensePlate" db:"license_plate"`
	VIN                 string        `json:"vin" db:"vin"`
	Status              VehicleStatus `json:"status" db:"status"`
	FuelCapacity        int           `json:"fuelCapacity" db:"fuel_capacity"`
	AssignedTo          *int64        `json:"assignedTo" db:"assigned_to"`
	LastMaintenanceDate *time.Time    `json:"lastMaintenanceDate" db:"last_maintenance_date"`
	NextMaintenanceDate *time.Time    `json:"nextMaintenanceDate" db:"next_maintenance_date"`
	CreatedAt           time.Time     `json:"createdAt" db:"created_at"`
}

// VehicleSummary is the short form embedded in enriched activity entries.
type VehicleSummary struct {
	ID    int64  `json:"id"`
	Code  string `json:"vehicleId"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

// Summary returns the short form of the vehicle.
func (v *Vehicle) Summary() *VehicleSummary {
	return &VehicleSummary{ID: v.ID, Code: v.Code, Make: v.Make, Model: v.Model}
}

// CreateVehicleRequest is the payload for vehicle creation.
type CreateVehicleRequest struct {
	Code                string        `json:"vehicleId" validate:"required"`
	Make                string        `json:"make" validate:"required"`
	Model               string        `json:"model" validate:"required"`
	Year                int           `json:"year" validate:"required,gte=1990"`
	LicensePlate        string        `json:"licensePlate" validate:"required"`
	VIN                 string        `json:"vin" validate:"required"`
	Status              VehicleStatus `json:"status" validate:"omitempty,oneof=available in_use maintenance service_due"`
	FuelCapacity        int           `json:"fuelCapacity" validate:"omitempty,gt=0"`
	AssignedTo          *int64        `json:"assignedTo"`
	LastMaintenanceDate *time.Time    `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time    `json:"nextMaintenanceDate"`
}

// VehiclePatch carries a partial vehicle update; nil fields are left untouched.
type VehiclePatch struct {
	Code                *string        `json:"vehicleId"`
	Make                *string        `json:"make"`
	Model               *string        `json:"model"`
	Year                *int           `json:"year" validate:"omitempty,gte=1990"`
	LicensePlate        *string        `json:"licensePlate"`
	VIN                 *string        `json:"vin"`
	Status              *VehicleStatus `json:"status" validate:"omitempty,oneof=available in_use maintenance service_due"`
	FuelCapacity        *int           `json:"fuelCapacity" validate:"omitempty,gt=0"`
	AssignedTo          *int64         `json:"assignedTo"`
	LastMaintenanceDate *time.Time     `json:"lastMaintenanceDate"`
	NextMaintenanceDate *time.Time     `json:"nextMaintenanceDate"`
}

// AssignVehicleRequest is the payload for assigning a vehicle to a user.
type AssignVehicleRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}
