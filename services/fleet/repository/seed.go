package repository

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

// Seed loads the demo fixture: an admin and a rider account, three
// motorbikes, a GPS point per bike, a few audit entries and two unread
// alerts. Intended for the memory store in local environments.
func (m *MemoryStore) Seed(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin, err := m.CreateUser(ctx, &models.User{
		Email:     "admin@riderlink.com",
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleAdmin,
		Phone:     "123-456-7890",
		Active:    true,
	})
	if err != nil {
		return err
	}

	rider, err := m.CreateUser(ctx, &models.User{
		Email:     "rider@riderlink.com",
		Password:  string(hash),
		FirstName: "John",
		LastName:  "Smith",
		Role:      models.RoleRider,
		Phone:     "123-456-7891",
		Active:    true,
	})
	if err != nil {
		return err
	}

	lastMaint := func(s string) *time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return &t
	}

	vehicles := []*models.Vehicle{
		{
			Code: "MBK-1023", Make: "Yamaha", Model: "YBR 125", Year: 2022,
			LicensePlate: "ABC123", VIN: "1HGCM82633A123456",
			Status: models.VehicleInUse, FuelCapacity: 10, AssignedTo: &rider.ID,
			LastMaintenanceDate: lastMaint("2023-01-12T00:00:00Z"),
			NextMaintenanceDate: lastMaint("2023-04-12T00:00:00Z"),
		},
		{
			Code: "MBK-1065", Make: "Honda", Model: "CBF 150", Year: 2021,
			LicensePlate: "DEF456", VIN: "1HGCM82633A654321",
			Status: models.VehicleAvailable, FuelCapacity: 12,
			LastMaintenanceDate: lastMaint("2023-02-03T00:00:00Z"),
			NextMaintenanceDate: lastMaint("2023-05-03T00:00:00Z"),
		},
		{
			Code: "MBK-1089", Make: "Suzuki", Model: "GS 150", Year: 2020,
			LicensePlate: "GHI789", VIN: "1HGCM82633A789012",
			Status: models.VehicleMaintenance, FuelCapacity: 11,
			LastMaintenanceDate: lastMaint("2022-12-27T00:00:00Z"),
			NextMaintenanceDate: lastMaint("2023-03-27T00:00:00Z"),
		},
	}
	for _, v := range vehicles {
		if _, err := m.CreateVehicle(ctx, v); err != nil {
			return err
		}
	}

	locations := []*models.GpsLocation{
		{VehicleID: 1, Latitude: 40.7128, Longitude: -74.0060, Speed: 30},
		{VehicleID: 2, Latitude: 40.7129, Longitude: -74.0061, Speed: 0},
		{VehicleID: 3, Latitude: 40.7130, Longitude: -74.0062, Speed: 0},
	}
	for _, loc := range locations {
		if _, err := m.CreateGpsLocation(ctx, loc); err != nil {
			return err
		}
	}

	vid1, vid3 := int64(1), int64(3)
	entries := []*models.ActivityLog{
		{UserID: &rider.ID, VehicleID: &vid1, Action: "vehicle_checkout", Description: "Vehicle MBK-1023 checked out"},
		{UserID: &admin.ID, VehicleID: &vid3, Action: models.ActionMaintenanceCompleted, Description: "Maintenance completed"},
		{UserID: &rider.ID, Action: models.ActionFuelReported, Description: "Fuel reported"},
		{VehicleID: &vid3, Action: "geofence_exit", Description: "Alert: Geofence exit"},
	}
	for _, entry := range entries {
		if _, err := m.CreateActivityLog(ctx, entry); err != nil {
			return err
		}
	}

	alerts := []*models.Alert{
		{VehicleID: &vid1, Type: models.AlertMaintenanceDue, Message: "Maintenance due in 5 days"},
		{VehicleID: &vid3, Type: models.AlertGeofenceExit, Message: "Vehicle exited designated area"},
	}
	for _, a := range alerts {
		if _, err := m.CreateAlert(ctx, a); err != nil {
			return err
		}
	}

	return nil
}
