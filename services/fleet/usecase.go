package fleet

import (
	"context"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

// AuthUC handles session establishment and identity lookups.
type AuthUC interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// UserUC manages fleet accounts.
type UserUC interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error)
}

// VehicleUC manages the vehicle inventory and rider assignment.
type VehicleUC interface {
	ListVehicles(ctx context.Context, status models.VehicleStatus) ([]*models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, actorID int64, req *models.CreateVehicleRequest) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, actorID, id int64, patch *models.VehiclePatch) (*models.Vehicle, error)
	AssignVehicle(ctx context.Context, vehicleID, userID int64) (*models.Vehicle, error)
}

// TelemetryUC records GPS points and serves location queries. Recording
// evaluates active geofences and raises alerts on boundary transitions.
type TelemetryUC interface {
	RecordLocation(ctx context.Context, req *models.CreateGpsLocationRequest) (*models.GpsLocation, error)
	LatestLocation(ctx context.Context, vehicleID int64) (*models.GpsLocation, error)
	LocationHistory(ctx context.Context, vehicleID int64, limit int) ([]*models.GpsLocation, error)
}

// MaintenanceUC manages service scheduling and completion.
type MaintenanceUC interface {
	CreateMaintenance(ctx context.Context, actorID int64, req *models.CreateMaintenanceRequest) (*models.Maintenance, error)
	ListMaintenanceForVehicle(ctx context.Context, vehicleID int64) ([]*models.Maintenance, error)
	ListUpcomingMaintenance(ctx context.Context) ([]*models.Maintenance, error)
	CompleteMaintenance(ctx context.Context, actorID, id int64, req *models.CompleteMaintenanceRequest) (*models.Maintenance, error)
}

// FuelUC records and lists fuel purchases.
type FuelUC interface {
	CreateFuelReport(ctx context.Context, actorID int64, req *models.CreateFuelReportRequest) (*models.FuelReport, error)
	ListFuelReportsForVehicle(ctx context.Context, vehicleID int64) ([]*models.FuelReport, error)
}

// ActivityUC serves the audit trail.
type ActivityUC interface {
	RecentActivity(ctx context.Context, limit int) ([]*models.ActivityEntry, error)
}

// GeofenceUC manages geofence definitions.
type GeofenceUC interface {
	ListGeofences(ctx context.Context) ([]*models.Geofence, error)
	CreateGeofence(ctx context.Context, actorID int64, req *models.CreateGeofenceRequest) (*models.Geofence, error)
}

// AlertUC serves and acknowledges alerts.
type AlertUC interface {
	ListUnreadAlerts(ctx context.Context) ([]*models.Alert, error)
	MarkAlertRead(ctx context.Context, id int64) (*models.Alert, error)
}

// DashboardUC composes the aggregated fleet summary.
type DashboardUC interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}
