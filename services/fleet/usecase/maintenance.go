package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riderlink/riderlink/internal/pkg/logger"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// MaintenanceUC implements service scheduling and completion.
type MaintenanceUC struct {
	repo fleet.Repository
}

// NewMaintenanceUC creates the maintenance use case.
func NewMaintenanceUC(repo fleet.Repository) fleet.MaintenanceUC {
	return &MaintenanceUC{repo: repo}
}

// CreateMaintenance schedules service for an existing vehicle and
// records a maintenance_scheduled audit entry.
func (uc *MaintenanceUC) CreateMaintenance(ctx context.Context, actorID int64, req *models.CreateMaintenanceRequest) (*models.Maintenance, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	vehicle, err := uc.repo.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fleet.ErrNotFound
	}

	rec := &models.Maintenance{
		VehicleID:     req.VehicleID,
		Type:          req.Type,
		Description:   req.Description,
		ScheduledDate: *req.ScheduledDate,
		Cost:          req.Cost,
		Technician:    req.Technician,
		Notes:         req.Notes,
	}
	if actorID > 0 {
		rec.CreatedBy = &actorID
	}

	created, err := uc.repo.CreateMaintenance(ctx, rec)
	if err != nil {
		return nil, err
	}

	entry := &models.ActivityLog{
		VehicleID:   &created.VehicleID,
		Action:      models.ActionMaintenanceScheduled,
		Description: fmt.Sprintf("Maintenance scheduled for vehicle %s", vehicle.Code),
	}
	if actorID > 0 {
		entry.UserID = &actorID
	}
	if _, err := uc.repo.CreateActivityLog(ctx, entry); err != nil {
		logger.Warn("Failed to record maintenance activity entry", logger.Err(err))
	}

	return created, nil
}

// ListMaintenanceForVehicle returns a vehicle's service history, newest
// first.
func (uc *MaintenanceUC) ListMaintenanceForVehicle(ctx context.Context, vehicleID int64) ([]*models.Maintenance, error) {
	return uc.repo.ListMaintenanceForVehicle(ctx, vehicleID)
}

// ListUpcomingMaintenance returns pending records scheduled strictly in
// the future, soonest first.
func (uc *MaintenanceUC) ListUpcomingMaintenance(ctx context.Context) ([]*models.Maintenance, error) {
	return uc.repo.ListUpcomingMaintenance(ctx)
}

// CompleteMaintenance stamps a record done. The completion date defaults
// to now; the vehicle flip and the audit entry are applied atomically by
// the repository.
func (uc *MaintenanceUC) CompleteMaintenance(ctx context.Context, actorID, id int64, req *models.CompleteMaintenanceRequest) (*models.Maintenance, error) {
	completedDate := time.Now()
	if req != nil && req.CompletedDate != nil {
		completedDate = *req.CompletedDate
	}
	notes := ""
	if req != nil {
		notes = req.Notes
	}

	rec, err := uc.repo.CompleteMaintenance(ctx, id, completedDate, notes)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fleet.ErrNotFound
	}

	logger.Info("Maintenance completed",
		logger.Int64("maintenance_id", rec.ID),
		logger.Int64("vehicle_id", rec.VehicleID),
		logger.Int64("actor_id", actorID),
	)
	return rec, nil
}
