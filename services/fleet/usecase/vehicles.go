package usecase

import (
	"context"
	"fmt"

	"github.com/riderlink/riderlink/internal/pkg/logger"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// VehicleUC implements inventory management and rider assignment.
type VehicleUC struct {
	repo fleet.Repository
}

// NewVehicleUC creates the vehicle use case.
func NewVehicleUC(repo fleet.Repository) fleet.VehicleUC {
	return &VehicleUC{repo: repo}
}

// ListVehicles returns the fleet, optionally filtered by status.
func (uc *VehicleUC) ListVehicles(ctx context.Context, status models.VehicleStatus) ([]*models.Vehicle, error) {
	if status == "" {
		return uc.repo.ListVehicles(ctx)
	}
	if !models.ValidVehicleStatus(status) {
		return nil, fleet.NewValidationError("status", "must be one of: available in_use maintenance service_due")
	}
	return uc.repo.ListVehiclesByStatus(ctx, status)
}

// GetVehicle fetches a single vehicle.
func (uc *VehicleUC) GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	vehicle, err := uc.repo.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fleet.ErrNotFound
	}
	return vehicle, nil
}

// CreateVehicle registers a vehicle and records a vehicle_created audit
// entry attributed to the actor.
func (uc *VehicleUC) CreateVehicle(ctx context.Context, actorID int64, req *models.CreateVehicleRequest) (*models.Vehicle, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.VehicleAvailable
	}

	vehicle, err := uc.repo.CreateVehicle(ctx, &models.Vehicle{
		Code:                req.Code,
		Make:                req.Make,
		Model:               req.Model,
		Year:                req.Year,
		LicensePlate:        req.LicensePlate,
		VIN:                 req.VIN,
		Status:              status,
		FuelCapacity:        req.FuelCapacity,
		AssignedTo:          req.AssignedTo,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: req.NextMaintenanceDate,
	})
	if err != nil {
		return nil, err
	}

	uc.audit(ctx, actorID, vehicle.ID, models.ActionVehicleCreated,
		fmt.Sprintf("Vehicle %s added to fleet", vehicle.Code))
	return vehicle, nil
}

// UpdateVehicle applies a partial update and records a vehicle_updated
// audit entry.
func (uc *VehicleUC) UpdateVehicle(ctx context.Context, actorID, id int64, patch *models.VehiclePatch) (*models.Vehicle, error) {
	if err := checkInput(patch); err != nil {
		return nil, err
	}

	vehicle, err := uc.repo.UpdateVehicle(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fleet.ErrNotFound
	}

	uc.audit(ctx, actorID, vehicle.ID, models.ActionVehicleUpdated,
		fmt.Sprintf("Vehicle %s updated", vehicle.Code))
	return vehicle, nil
}

// AssignVehicle hands a vehicle to a rider. The assignment, the status
// flip and the audit entry are applied atomically by the repository.
func (uc *VehicleUC) AssignVehicle(ctx context.Context, vehicleID, userID int64) (*models.Vehicle, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fleet.ErrNotFound
	}

	vehicle, err := uc.repo.AssignVehicleToUser(ctx, vehicleID, userID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fleet.ErrNotFound
	}

	logger.Info("Vehicle assigned",
		logger.Int64("vehicle_id", vehicle.ID),
		logger.Int64("user_id", userID),
	)
	return vehicle, nil
}

// audit records an activity entry after a successful primary write.
// Failures are logged and swallowed; the primary result stands.
func (uc *VehicleUC) audit(ctx context.Context, actorID, vehicleID int64, action, description string) {
	entry := &models.ActivityLog{
		VehicleID:   &vehicleID,
		Action:      action,
		Description: description,
	}
	if actorID > 0 {
		entry.UserID = &actorID
	}
	if _, err := uc.repo.CreateActivityLog(ctx, entry); err != nil {
		logger.Warn("Failed to record activity entry",
			logger.String("action", action),
			logger.Err(err),
		)
	}
}
