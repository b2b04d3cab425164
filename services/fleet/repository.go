package fleet

import (
	"context"
	"time"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

// Repository is the single source of truth for entity persistence. Every
// lookup returns (nil, nil) when the id is absent; errors are reserved
// for storage failures. Composite operations (AssignVehicleToUser,
// CompleteMaintenance) apply all of their writes atomically or not at all.
type Repository interface {
	// Users
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)

	// Vehicles
	GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error)
	GetVehicleByCode(ctx context.Context, code string) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, patch *models.VehiclePatch) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	ListVehiclesByStatus(ctx context.Context, status models.VehicleStatus) ([]*models.Vehicle, error)
	// AssignVehicleToUser sets AssignedTo and flips the status to in_use
	// as one unit, and appends a vehicle_assigned activity entry.
	AssignVehicleToUser(ctx context.Context, vehicleID, userID int64) (*models.Vehicle, error)

	// GPS locations (append-only; timestamp and geohash are server-set)
	CreateGpsLocation(ctx context.Context, loc *models.GpsLocation) (*models.GpsLocation, error)
	GetLatestGpsLocation(ctx context.Context, vehicleID int64) (*models.GpsLocation, error)
	ListGpsLocationsForVehicle(ctx context.Context, vehicleID int64, limit int) ([]*models.GpsLocation, error)

	// Maintenance
	CreateMaintenance(ctx context.Context, rec *models.Maintenance) (*models.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id int64, patch *models.MaintenancePatch) (*models.Maintenance, error)
	GetMaintenance(ctx context.Context, id int64) (*models.Maintenance, error)
	ListMaintenanceForVehicle(ctx context.Context, vehicleID int64) ([]*models.Maintenance, error)
	// ListUpcomingMaintenance returns records strictly after now and not
	// completed, ascending by scheduled date. Overdue records are excluded.
	ListUpcomingMaintenance(ctx context.Context) ([]*models.Maintenance, error)
	// CompleteMaintenance stamps the record, flips the owning vehicle back
	// to available with its last maintenance date updated, and appends a
	// maintenance_completed activity entry, as one unit.
	CompleteMaintenance(ctx context.Context, id int64, completedDate time.Time, notes string) (*models.Maintenance, error)

	// Activity logs (append-only)
	CreateActivityLog(ctx context.Context, entry *models.ActivityLog) (*models.ActivityLog, error)
	ListRecentActivity(ctx context.Context, limit int) ([]*models.ActivityLog, error)

	// Fuel reports (append-only; appends a fuel_reported activity entry)
	CreateFuelReport(ctx context.Context, report *models.FuelReport) (*models.FuelReport, error)
	ListFuelReportsForVehicle(ctx context.Context, vehicleID int64) ([]*models.FuelReport, error)

	// Geofences
	CreateGeofence(ctx context.Context, fence *models.Geofence) (*models.Geofence, error)
	UpdateGeofence(ctx context.Context, id int64, patch *models.GeofencePatch) (*models.Geofence, error)
	GetGeofence(ctx context.Context, id int64) (*models.Geofence, error)
	ListGeofences(ctx context.Context) ([]*models.Geofence, error)

	// Alerts (read flag is monotonic false to true)
	CreateAlert(ctx context.Context, alert *models.Alert) (*models.Alert, error)
	MarkAlertRead(ctx context.Context, id int64) (*models.Alert, error)
	ListUnreadAlerts(ctx context.Context) ([]*models.Alert, error)
}
